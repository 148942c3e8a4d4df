package main

import "fithub_backend/internal/app"

func main() {
	app.Run()
}
