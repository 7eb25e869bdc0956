// @title           JobLink API
// @version         1.0
// @description     Recruiting backend: public job board, candidate applications, employer inquiries and the admin dashboard.
// @contact.name    JobLink
// @contact.email   support@joblink.example
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import (
	_ "workbridge_backend/docs"
	"workbridge_backend/internal/app"
)

func main() {
	app.Run()
}
