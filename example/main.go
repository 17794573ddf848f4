package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/256dpi/challenge"
	"github.com/256dpi/challenge/program"
)

var wg sync.WaitGroup

var send int64
var recv int64
var solved int64
var diffs []float64
var mutex sync.Mutex

const participants = 8

var authority = program.Key{1}

func participant(bank *challenge.Bank, dispatcher *challenge.Dispatcher, key program.Key, done <-chan struct{}) {
	// fund participant
	err := bank.Mint(key, 1_000_000_000_000)
	if err != nil {
		panic(err)
	}

	// prepare counter
	var counter int

	for {
		// prepare instruction
		var ins program.Instruction
		if counter%2 == 0 {
			ins = bank.Program().NewAdmit(key, authority)
		} else {
			ins = bank.Program().NewRedeem(key, authority, authority, strconv.Itoa(counter%1000))
		}
		counter++

		// submit instruction
		start := time.Now()
		res := make(chan error, 1)
		ok := dispatcher.Submit(challenge.Request{
			Instruction: ins,
			Signers:     []program.Key{key},
		}, func(_ challenge.Request, err error) {
			res <- err
		})
		if !ok {
			wg.Done()
			return
		}

		// increment
		mutex.Lock()
		send++
		mutex.Unlock()

		// await result
		select {
		case err = <-res:
		case <-done:
			wg.Done()
			return
		}
		if err != nil {
			panic(err)
		}

		// calculate diff
		diff := float64(time.Since(start)) / float64(time.Millisecond)

		// increment and save diff
		mutex.Lock()
		recv++
		diffs = append(diffs, diff)
		if redeem, ok := ins.(*program.Redeem); ok && redeem.Solved {
			solved++
		}
		mutex.Unlock()
	}
}

func printer(bank *challenge.Bank, done <-chan struct{}) {
	// create ticker
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		// await signal
		select {
		case <-ticker.C:
		case <-done:
			wg.Done()
			return
		}

		// get data
		mutex.Lock()
		r := recv
		s := send
		n := solved
		d := diffs
		recv = 0
		send = 0
		solved = 0
		diffs = nil
		mutex.Unlock()

		// get stats
		min, _ := stats.Min(d)
		max, _ := stats.Max(d)
		mean, _ := stats.Mean(d)
		p90, _ := stats.Percentile(d, 90)
		p95, _ := stats.Percentile(d, 95)
		p99, _ := stats.Percentile(d, 99)

		// get record
		record, err := bank.Challenge(authority)
		if err != nil {
			panic(err)
		}

		// print rate
		fmt.Printf("send: %d ins/s, ", s)
		fmt.Printf("recv %d ins/s, ", r)
		fmt.Printf("solved %d/s, ", n)
		fmt.Printf("min: %.2fms, ", min)
		fmt.Printf("mean: %.2fms, ", mean)
		fmt.Printf("p90: %.2fms, ", p90)
		fmt.Printf("p95: %.2fms, ", p95)
		fmt.Printf("p99: %.2fms, ", p99)
		fmt.Printf("max: %.2fms, ", max)
		fmt.Printf("solving: %d\n", record.Solving)
	}
}

func main() {
	// get dir
	dir, err := filepath.Abs("./data")
	if err != nil {
		panic(err)
	}

	// remove dir
	err = os.RemoveAll(dir)
	if err != nil {
		panic(err)
	}

	// open db
	db, err := challenge.OpenDB(dir)
	if err != nil {
		panic(err)
	}

	// get program
	prg, err := challenge.DefaultConfig().Program(nil)
	if err != nil {
		panic(err)
	}

	// create bank
	bank, err := challenge.CreateBank(db, challenge.BankConfig{
		Prefix:  "bank",
		Program: prg,
	})
	if err != nil {
		panic(err)
	}

	// prepare solutions
	solutions := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		solutions = append(solutions, strconv.Itoa(i*10))
	}

	// create challenge
	err = bank.Mint(authority, 1_000_000_000_000)
	if err != nil {
		panic(err)
	}
	err = bank.Execute(prg.NewCreateChallenge(authority, authority, 1000, 1, authority, solutions), authority)
	if err != nil {
		panic(err)
	}

	// create dispatcher
	dispatcher := challenge.NewDispatcher(bank, challenge.DispatcherConfig{
		Queue: participants,
	})

	// create control channel
	done := make(chan struct{})

	// run routines
	wg.Add(participants + 1)
	for i := 0; i < participants; i++ {
		go participant(bank, dispatcher, program.Key{2, byte(i)}, done)
	}
	go printer(bank, done)

	// prepare exit
	exit := make(chan os.Signal, 1)
	signal.Notify(exit, syscall.SIGINT, syscall.SIGTERM)
	<-exit

	// close control channel
	close(done)
	wg.Wait()

	// close dispatcher
	dispatcher.Close()

	// close db
	err = db.Close()
	if err != nil {
		panic(err)
	}
}
