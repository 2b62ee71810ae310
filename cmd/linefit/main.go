package main

import (
	"flag"
	"log"
	"os"

	"github.com/goccy/go-json"
	"github.com/nmlab/go-linefit"
	"github.com/nmlab/go-linefit/dataset"
	"github.com/pkg/profile"
)

// Built-in demonstration samples. The x values span less than a tenth of a
// unit, so adding a baseline near 7.7e5 pushes the moments formula into
// catastrophic cancellation while the centered formula keeps the slope.
var (
	demoX = []float64{
		0.440225, 0.450230, 0.460235, 0.470241, 0.480245,
		0.490251, 0.500256, 0.510261, 0.520266, 0.530271,
	}
	demoY = []float64{
		568.1473, 568.4774, 568.7626, 569.0398, 569.234,
		569.5013, 569.8461, 570.1536, 570.3557, 570.6171,
	}
	demoOffset = 770656.892832
)

func main() {
	inputPath := flag.String("input", "", `path to a json sample set {"x": [...], "y": [...]}; uses the built-in demonstration data when empty`)
	offset := flag.Float64("offset", demoOffset, "baseline added uniformly to every x value before the offset fits")
	plotPath := flag.String("plot", "", "write comparison charts to this html file")
	jsonOut := flag.Bool("json", false, "print results as json instead of the text report")
	iters := flag.Int("iters", 1, "number of comparison iterations to run, useful together with -profile")
	profileRun := flag.Bool("profile", false, "write a cpu profile of the comparison loop to the working directory")
	flag.Parse()

	samples, err := loadSamples(*inputPath)
	if err != nil {
		log.Fatal(err)
	}

	comp, err := linefit.New(nil)
	if err != nil {
		log.Fatal(err)
	}

	if *profileRun {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	var res *linefit.Results
	for i := 0; i < *iters; i++ {
		res, err = comp.Compare(samples.X, samples.Y, *offset)
		if err != nil {
			log.Fatal(err)
		}
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Fatal(err)
		}
	} else {
		if err := res.Report(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}

	if *plotPath != "" {
		if err := comp.PlotComparison(*plotPath); err != nil {
			log.Fatal(err)
		}
	}
}

func loadSamples(path string) (*dataset.SampleSet, error) {
	if path == "" {
		return dataset.New(demoX, demoY)
	}
	return dataset.LoadFile(path)
}
