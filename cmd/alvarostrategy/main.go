// Command alvarostrategy runs the Álvaro Strategy website server.
// All configuration comes from environment variables via SiteConfig.
package main

import (
	"log"

	site "github.com/alvarostrategy/site"
)

func main() {
	cfg, err := site.ConfigFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app := site.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
