package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"liyu1981.xyz/coldtrack-monitor/pkg/feed"
)

var maxSensors = flag.Int("sensors", 1000, "number of feed paths to publish to")
var rounds = flag.Int("rounds", 20, "readings published per feed path")
var broker = flag.String("broker", "tcp://127.0.0.1:1883", "MQTT broker url")
var prefix = flag.String("prefix", "status", "feed topic prefix")

var states = []string{"normal", "deshielo", "falla", ""}

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

func main() {
	flag.Parse()

	feedPaths := make([]string, *maxSensors)
	for i := 0; i < *maxSensors; i++ {
		feedPaths[i] = "camaras/" + uuid.NewString()
	}
	fmt.Printf("generated %v feed paths\n", *maxSensors)

	source := feed.NewMQTTSource(feed.MQTTOptions{Broker: *broker, ClientID: "feed1k"})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := source.Connect(ctx); err != nil {
		log.Fatal("Failed to connect to MQTT broker:", err)
	}
	cancel()
	defer source.Close()

	fmt.Printf("broker verified and connected\n")

	var published, malformed, failed atomic.Int64

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < *maxSensors; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			topic := feed.Topic(*prefix, feedPaths[i])
			for r := 0; r < *rounds; r++ {
				payload, ok := genReading()
				if !ok {
					malformed.Add(1)
				}
				if err := source.Publish(topic, true, payload); err != nil {
					failed.Add(1)
					fmt.Printf("\nerror: %v\n", err)
					continue
				}
				published.Add(1)
				fmt.Printf("\rpublished reading for sensor %v", i)
				time.Sleep(time.Duration(50+rndInt(200)) * time.Millisecond)
			}
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	fmt.Printf(
		"\n\rpublished %v readings (%v malformed, %v failed): used time=%v seconds, throughput=%v msg/second\n",
		published.Load(), malformed.Load(), failed.Load(), usedTime.Seconds(), float64(published.Load())/usedTime.Seconds(),
	)
}

func rndInt(n int32) int32 {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(n)
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

// genReading returns a live snapshot; about one in twenty is malformed so the
// decoder's drop path is exercised too.
func genReading() ([]byte, bool) {
	if rndInt(20) == 0 {
		bad := []map[string]any{
			{"temp": "cold", "ts": time.Now().Unix()},
			{"temp": -18.2},
			{"temp": nil, "ts": time.Now().Unix(), "state": "normal"},
		}
		payload, _ := json.Marshal(bad[rndInt(int32(len(bad)))])
		return payload, false
	}

	payload, _ := json.Marshal(map[string]any{
		"temp":  rndFloat64(-25.0, 8.0, 1),
		"state": states[rndInt(int32(len(states)))],
		"ts":    time.Now().Unix(),
	})
	return payload, true
}
