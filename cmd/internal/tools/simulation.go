package tools

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/secded/benchmarking"
	"github.com/sirupsen/logrus"
)

//Step runs a simulation for one error parameter until it reaches trials, continuing from previous.
type Step func(ctx context.Context, parameter float64, trials, threads int, previous benchmarking.Stats, checkpoint benchmarking.Checkpoints) benchmarking.Stats

//SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext() (context.Context, context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case sig := <-sigs:
			logrus.Infof("received %v, stopping", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()
	return ctx, cancel
}

//RunSimulation grows the stats of every parameter in rounds so partial results
// are spread over all parameters, saving a checkpoint to outputFilename as it goes.
func RunSimulation(ctx context.Context, data *SimulationStats, parameters []float64, trials, threads int, outputFilename string, step Step, showProgress bool) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	trialsPerIter := threads * 10
	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trials * len(parameters))
	}

trialLoops:
	for t := trialsPerIter; ; t += trialsPerIter {
		if t > trials {
			t = trials
		}
		for _, p := range parameters {
			select {
			case <-ctx.Done():
				break trialLoops
			default:
			}

			before := data.Stats[p].Trials()
			checkpoint := func(stats benchmarking.Stats) {
				//we want to save the checkpoint
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				checkpointCount++
				if checkpointCount%trialsPerIter != 0 {
					return
				}

				data.Stats[p] = stats
				err := SaveResults(outputFilename, data)
				if err != nil {
					logrus.Errorf("unable to save checkpoint: %v", err)
				}
			}
			data.Stats[p] = step(ctx, p, t, threads, data.Stats[p], checkpoint)
			if showProgress {
				bar.Add(data.Stats[p].Trials() - before)
			}
		}
		if t >= trials {
			break
		}
	}
	if showProgress {
		bar.Finish()
	}

	logrus.Debugf("simulation stopped after %v checkpoints", checkpointCount)
}
