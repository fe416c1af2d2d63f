package handlers

// @title Function Invoker API
// @version 1.0
// @description HTTP wrapper that loads a user-supplied function at startup and serves it over a single invoke endpoint.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/your-org/function-invoker-api

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

// @tag.name invoke
// @tag.description Function invocation

// @tag.name health
// @tag.description Liveness probe
