package main

import (
	"fmt"
	"os"
	"runtime/pprof"
)

func main() {
	if os.Getenv("PROFILE") != "" {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	err := newRootCmd().Execute()
	if serr := shutdownTracing(); serr != nil && err == nil {
		err = serr
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}
