package main

import "github.com/castkeep/catalog-api/cmd"

// @title           Podcast Catalog API
// @version         1.0.0
// @description     A catalog manager for podcasts and their episodes with free-text search
// @contact.name    API Support
// @contact.url     https://github.com/castkeep/catalog-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
