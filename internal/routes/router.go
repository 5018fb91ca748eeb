// internal/routes/router.go
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hrms_backend/internal/config"
	"hrms_backend/internal/handlers"
	"hrms_backend/internal/middleware"
	"hrms_backend/internal/services"
)

func NewRouter(db *gorm.DB, log *logrus.Logger, cfg *config.Config) *gin.Engine {
	r := gin.New()
	// Recovery sits inside the logger and metrics layers so a recovered
	// panic still shows up as a 500 in both.
	r.Use(
		middleware.RequestLogger(log),
		middleware.Metrics(),
		middleware.Recovery(log),
		cors.New(corsConfig(cfg)),
	)

	employeeSvc := services.NewEmployeeService(db)
	attendanceSvc := services.NewAttendanceService(db)

	employeeH := handlers.NewEmployeeHandler(employeeSvc, log)
	attendanceH := handlers.NewAttendanceHandler(attendanceSvc, log)
	dashboardH := handlers.NewDashboardHandler(employeeSvc, attendanceSvc, log)

	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/employees", employeeH.Create)
		api.GET("/employees", employeeH.List)
		api.GET("/employees/:id", employeeH.Get)
		api.DELETE("/employees/:id", employeeH.Delete)

		api.POST("/attendance", attendanceH.Mark)
		api.GET("/attendance", attendanceH.List)
		api.GET("/attendance/record", attendanceH.GetRecord)
		api.GET("/attendance/summary", attendanceH.Summary)
		api.GET("/attendance/employee/:id", attendanceH.EmployeeReport)
		api.PUT("/attendance/:id", attendanceH.UpdateStatus)
		api.DELETE("/attendance/:id", attendanceH.Delete)

		api.GET("/dashboard/stats", dashboardH.Stats)
	}

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"}
	allowAll := len(cfg.CORSOrigins) == 0
	for _, origin := range cfg.CORSOrigins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	return corsCfg
}
