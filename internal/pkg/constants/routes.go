package constants

// Redirect targets reported by the session gate and logout
const (
	PathLogin            = "/login"
	PathAdminHome        = "/adminHome"
	PathStudentDashboard = "/student/dashboard"
	PathAdminLogin       = "/adminlogin"
	PathStudentLogin     = "/studentlogin"
	PathRoot             = "/"
)
