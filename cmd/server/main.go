package main

// @title           HarvestShare API
// @version         1.0
// @description     Marketplace connecting landowners with unharvested fruit trees to harvesters who pick them for a share of the yield
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /auth/login
func main() {
	Execute()
}
