package routes

import (
	"github.com/gofiber/fiber/v2"

	"gurukul/backend/config"
	"gurukul/backend/controllers"
	"gurukul/backend/middleware"
	"gurukul/backend/models"
	"gurukul/backend/store"
)

// SetupRoutes wires every endpoint. Each route states its own role
// list; the lists are deliberate and differ between routes.
func SetupRoutes(app *fiber.App, st store.Store, cfg *config.Config) {
	auth := middleware.RequireAuth(cfg)
	admin := middleware.RequireRoles(st, models.RoleAdmin)
	adminManager := middleware.RequireRoles(st, models.RoleAdmin, models.RoleManager)
	staff := middleware.RequireRoles(st, models.RoleAdmin, models.RoleManager, models.RoleMentor)
	batchAccess := middleware.RequireBatchAccess(st)

	// Auth
	authController := controllers.NewAuthController(st, cfg)
	app.Get("/api/auth/user", auth, authController.GetAuthUser)

	// Catalog (public reads, admin writes)
	catalogController := controllers.NewCatalogController(st, cfg)
	app.Get("/api/categories", catalogController.GetCategories)
	app.Post("/api/categories", auth, admin, catalogController.CreateCategory)
	app.Get("/api/courses", catalogController.GetCourses)
	app.Get("/api/courses/:slug", catalogController.GetCourseBySlug)
	app.Post("/api/courses", auth, admin, catalogController.CreateCourse)
	app.Put("/api/courses/:id", auth, admin, catalogController.UpdateCourse)
	app.Delete("/api/courses/:id", auth, admin, catalogController.DeleteCourse)
	app.Get("/api/courses/:id/chapters", catalogController.GetCourseChapters)

	// Batches
	batchController := controllers.NewBatchController(st, cfg)
	app.Get("/api/batches", batchController.GetBatches)
	app.Get("/api/batches/:id", batchController.GetBatch)
	app.Post("/api/batches", auth, adminManager, batchController.CreateBatch)

	// Enrollments
	enrollmentController := controllers.NewEnrollmentController(st, cfg)
	app.Get("/api/enrollments/my", auth, enrollmentController.GetMyEnrollments)
	app.Get("/api/enrollments/batch/:batchId", auth, staff, enrollmentController.GetBatchEnrollments)
	app.Post("/api/enrollments", auth, enrollmentController.CreateEnrollment)
	app.Put("/api/enrollments/:id", auth, staff, enrollmentController.UpdateEnrollment)

	// Batch-scoped content: enrolled students or staff
	contentController := controllers.NewContentController(st, cfg)
	app.Get("/api/batches/:batchId/lectures", auth, batchAccess, contentController.GetBatchLectures)
	app.Get("/api/batches/:batchId/resources", auth, batchAccess, contentController.GetBatchResources)
	app.Post("/api/lectures", auth, staff, contentController.CreateLecture)
	app.Put("/api/lectures/:id", auth, staff, contentController.UpdateLecture)
	app.Get("/api/lectures/today", auth, contentController.GetTodayLectures)
	app.Get("/api/lectures/live", auth, contentController.GetLiveLectures)
	app.Post("/api/resources", auth, staff, contentController.CreateResource)
	app.Post("/api/submissions", auth, contentController.CreateSubmission)
	app.Get("/api/resources/:id/submissions", auth, staff, contentController.GetResourceSubmissions)
	app.Put("/api/submissions/:id/grade", auth, staff, contentController.GradeSubmission)
	app.Get("/api/library", auth, contentController.GetLibrary)

	// Orders
	orderController := controllers.NewOrderController(st, cfg)
	app.Get("/api/orders/my", auth, orderController.GetMyOrders)
	app.Post("/api/orders", auth, orderController.CreateOrder)
	app.Put("/api/orders/:id/status", auth, orderController.UpdateOrderStatus)

	// Announcements
	announcementController := controllers.NewAnnouncementController(st, cfg)
	app.Get("/api/batches/:batchId/announcements", auth, batchAccess, announcementController.GetBatchAnnouncements)
	app.Get("/api/announcements", auth, announcementController.GetGlobalAnnouncements)
	app.Post("/api/announcements", auth, staff, announcementController.CreateAnnouncement)

	// Back-office
	adminController := controllers.NewAdminController(st, cfg)
	app.Get("/api/admin/users", auth, admin, adminController.GetUsers)
	app.Put("/api/admin/users/:id/role", auth, admin, adminController.UpdateUserRole)
	app.Post("/api/chapters", auth, admin, adminController.CreateChapter)
	app.Post("/api/chapter-items", auth, admin, adminController.CreateChapterItem)
	app.Get("/api/admin/stats", auth, admin, adminController.GetStats)
}
