package graph

import (
	"github.com/hhe-bench/hheperf/internal/models"
)

// timeAxis converts sample times to axis positions relative to the first
// sample. Server runs last hours, so their axis is scaled to hours; on the
// "zero" Pi type the first 50 seconds are stretched and the rest compressed,
// which keeps the short setup phase readable next to the long batch phase.
func (p *Plotter) timeAxis(samples []models.Sample, meta models.RunMetadata) ([]float64, string) {
	xs := make([]float64, len(samples))
	if len(samples) == 0 {
		return xs, "Time (Seconds)"
	}
	start := samples[0].Time
	for i, s := range samples {
		xs[i] = s.Time.Sub(start).Seconds()
	}

	if meta.Component == models.ComponentServer {
		for i := range xs {
			xs[i] /= 3600
		}
		return xs, "Time (Hours)"
	}

	if p.PiType == "zero" {
		for i, s := range xs {
			if s <= 50 {
				xs[i] = s * 2 / 50
			} else {
				xs[i] = 2 + (s-50)/5
			}
		}
		return xs, "Time"
	}

	return xs, "Time (Seconds)"
}

// swapValues rescales SWAP readings for the plain-variant client, whose SWAP
// footprint is far off the usual kB range on both Pi types.
func (p *Plotter) swapValues(samples []models.Sample, meta models.RunMetadata) ([]float64, string) {
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = float64(s.SwapKB)
	}
	label := "SWAP Usage (kB)"

	if meta.Component == models.ComponentClient && meta.Variant == models.VariantPlain {
		switch p.PiType {
		case "3b":
			for i := range values {
				values[i] *= 1024
			}
			label = "SWAP Usage (Bytes)"
		case "zero":
			for i := range values {
				values[i] /= 1024
			}
			label = "SWAP Usage (MB)"
		}
	}
	return values, label
}

// trimLast drops the final sample, which the measurement writers emit during
// teardown and which distorts the tail of every chart.
func trimLast(samples []models.Sample) []models.Sample {
	if len(samples) > 1 {
		return samples[:len(samples)-1]
	}
	return samples
}
