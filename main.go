package main

import "github.com/thereayou/twitter-lite/cmd/server"

func main() {
	server.NewServer().Run()
}
