package main

import (
	slope "Geoslope/internal/calc/slope"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
)

// Offline runner: takes a JSON slope case, prints the search result.
// Useful for batch scripting without the web service.
func main() {
	inPath := flag.String("in", "", "path to a JSON slope case file")
	outPath := flag.String("out", "", "write the result JSON here instead of stdout")
	flag.Parse()

	if *inPath == "" {
		log.Fatal("usage: slopecli -in case.json [-out result.json]")
	}

	raw, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatal("read case file:", err)
	}

	var input slope.Input
	if err := json.Unmarshal(raw, &input); err != nil {
		log.Fatal("parse case file:", err)
	}

	res, err := slope.Calculate(input)
	if err != nil {
		log.Fatal("calculation:", err)
	}

	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		log.Fatal("encode result:", err)
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, b, 0644); err != nil {
			log.Fatal("write result:", err)
		}
		return
	}
	fmt.Println(string(b))

	if res.Found {
		log.Printf("FS = %.3f at xc=%.2f yc=%.2f R=%.2f (%d/%d candidates accepted)",
			res.FS, res.XcM, res.YcM, res.RM, res.Accepted, res.Evaluated)
	} else {
		log.Println("no valid slip circle in the search window")
	}
}
