package main

import "github.com/egz13/logprobe/internal/app"

func main() {
	app.Run()
}
