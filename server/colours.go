package server

const (
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[93m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"

	ResetColor = "\033[0m" // Reset to default color
)

var methodColors = map[string]string{
	"GET":    Green,
	"POST":   Cyan,
	"PUT":    "\033[33m",
	"DELETE": Red,
}
