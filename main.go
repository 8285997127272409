package main

import "dayplanner/internal/app"

func main() {
	app.Run()
}
