package main

import "autoready/internal/app"

func main() {
	app.Main()
}
