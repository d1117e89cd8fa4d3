package main

import "team-collab-app/config"

func main() {
	config.RunServer()
}
