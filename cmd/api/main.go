package main

import (
	"os"
)

// @title Bugtrackr API
// @version 1.0
// @description Project and bug tracking service.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
