package main

import "github.com/asmita0917/multi-user-blog/web"

func main() {
	web.RunApp()
}
