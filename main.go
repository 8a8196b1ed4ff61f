package main

import (
	"votemap.tw/backend/cmd/app"
)

func main() {
	app.Run()
}
