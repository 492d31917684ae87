package main

import "github.com/architeacher/monitoring/internal/runtime"

func main() {
	runtime.New().Run()
}
