package main

import (
	"flag"
	"time"

	"github.com/kpfaulkner/point-go/point"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {
	iterations := flag.Int("n", 1000, "number of iterations per workload")
	mem := flag.Bool("mem", false, "heap profile instead of cpu profile")
	flag.Parse()

	var p interface{ Stop() }
	if *mem {
		p = profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	} else {
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}
	defer p.Stop()

	timed("plot lines", func() {
		for i := 0; i < *iterations; i++ {
			dest := point.New(int32(i%997), int32(i%613)).Scale(3)
			_ = point.PlotLine(point.Origin, dest)
		}
	})

	timed("dot products", func() {
		var acc int32
		for i := 0; i < *iterations*1000; i++ {
			a := point.New(int32(i), int32(-i))
			acc += a.Dot(a.Rotate90CW().Add(point.New(1, 1)))
		}
		log.Debugf("dot accumulator %d", acc)
	})

	timed("range walk", func() {
		var sum int64
		for i := 0; i < *iterations/10+1; i++ {
			next := point.RangeIterator(point.Origin, point.New(255, 255))
			for {
				q, err := next()
				if err != nil {
					break
				}
				sum += int64(q.Index(256))
			}
		}
		log.Debugf("range sum %d", sum)
	})
}

func timed(name string, f func()) {
	start := time.Now()
	f()
	log.Infof("%s took %d ms", name, time.Since(start).Milliseconds())
}
