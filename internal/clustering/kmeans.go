package clustering

import (
	"errors"
	"log"
	"math"
	"math/rand"

	"vietravel/internal/dataset"
)

var ErrNoPoints = errors.New("clustering requires at least one point")

// Config controls a clustering run. The fixed seed keeps runs reproducible.
type Config struct {
	K             int
	MaxIterations int
	Seed          int64
}

func DefaultConfig() Config {
	return Config{K: 8, MaxIterations: 100, Seed: 42}
}

// Point is one location with aggregated weather features.
type Point struct {
	Name     string
	Features dataset.Vector
}

// Result is an immutable snapshot of one clustering run. Centroids live in
// standardized feature space; Points keep the raw values for analysis.
type Result struct {
	K           int
	Weights     dataset.Weights
	Centroids   []dataset.Vector
	Assignments map[string]int
	Points      []Point
	Labels      []int
}

// Run executes weighted Lloyd iteration over the points: standardize each
// feature, seed centroids k-means++ style, then alternate assignment and
// centroid recomputation until assignments stabilize or the iteration cap
// is hit. distance(x, c) = sum_i w_i * (x_i - c_i)^2.
func Run(points []Point, weights dataset.Weights, cfg Config) (*Result, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	k := cfg.K
	if k < 1 {
		k = 1
	}
	if k > len(points) {
		log.Printf("Reducing cluster count from %d to %d (dataset has %d locations)", k, len(points), len(points))
		k = len(points)
	}
	maxIter := cfg.MaxIterations
	if maxIter < 1 {
		maxIter = 100
	}

	scaled := standardize(points)
	rng := rand.New(rand.NewSource(cfg.Seed))
	centroids := seedCentroids(scaled, weights, k, rng)
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, x := range scaled {
			best := nearestCentroid(x, centroids, weights)
			if best != labels[i] {
				labels[i] = best
				changed = true
			}
		}

		reseedEmptyClusters(scaled, centroids, labels, weights)
		recomputeCentroids(scaled, centroids, labels)

		if !changed && iter > 0 {
			break
		}
	}

	res := &Result{
		K:           k,
		Weights:     weights,
		Centroids:   centroids,
		Assignments: make(map[string]int, len(points)),
		Points:      points,
		Labels:      labels,
	}
	for i, p := range points {
		res.Assignments[p.Name] = labels[i]
	}
	return res, nil
}

// standardize z-scores each feature over the point set. Missing values map to
// zero, the column mean in standardized space.
func standardize(points []Point) []dataset.Vector {
	var mean, std dataset.Vector
	var count [dataset.NumFeatures]int

	for _, p := range points {
		for i, v := range p.Features {
			if !math.IsNaN(v) {
				mean[i] += v
				count[i]++
			}
		}
	}
	for i := range mean {
		if count[i] > 0 {
			mean[i] /= float64(count[i])
		}
	}
	for _, p := range points {
		for i, v := range p.Features {
			if !math.IsNaN(v) {
				d := v - mean[i]
				std[i] += d * d
			}
		}
	}
	for i := range std {
		if count[i] > 0 {
			std[i] = math.Sqrt(std[i] / float64(count[i]))
		}
	}

	scaled := make([]dataset.Vector, len(points))
	for pi, p := range points {
		for i, v := range p.Features {
			switch {
			case math.IsNaN(v):
				scaled[pi][i] = 0
			case std[i] > 0:
				scaled[pi][i] = (v - mean[i]) / std[i]
			default:
				scaled[pi][i] = 0
			}
		}
	}
	return scaled
}

func weightedSqDist(a, b dataset.Vector, w dataset.Weights) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += w[i] * d * d
	}
	return sum
}

func nearestCentroid(x dataset.Vector, centroids []dataset.Vector, w dataset.Weights) int {
	best := 0
	bestDist := weightedSqDist(x, centroids[0], w)
	for c := 1; c < len(centroids); c++ {
		if d := weightedSqDist(x, centroids[c], w); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

// seedCentroids picks initial centroids k-means++ style: the first uniformly
// at random, each next one with probability proportional to its squared
// distance from the nearest centroid chosen so far.
func seedCentroids(points []dataset.Vector, w dataset.Weights, k int, rng *rand.Rand) []dataset.Vector {
	centroids := make([]dataset.Vector, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	dists := make([]float64, len(points))
	for len(centroids) < k {
		var total float64
		for i, p := range points {
			dists[i] = weightedSqDist(p, centroids[0], w)
			for _, c := range centroids[1:] {
				if d := weightedSqDist(p, c, w); d < dists[i] {
					dists[i] = d
				}
			}
			total += dists[i]
		}
		if total == 0 {
			// All remaining points coincide with a centroid.
			centroids = append(centroids, points[rng.Intn(len(points))])
			continue
		}
		target := rng.Float64() * total
		var cum float64
		chosen := len(points) - 1
		for i, d := range dists {
			cum += d
			if cum >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}
	return centroids
}

// reseedEmptyClusters moves each empty cluster's centroid onto the point
// farthest from its current centroid, so convergence never strands a cluster.
func reseedEmptyClusters(points []dataset.Vector, centroids []dataset.Vector, labels []int, w dataset.Weights) {
	counts := make([]int, len(centroids))
	for _, l := range labels {
		counts[l]++
	}
	for c := range centroids {
		if counts[c] > 0 {
			continue
		}
		farthest, farthestDist := -1, -1.0
		for i, p := range points {
			if counts[labels[i]] <= 1 {
				continue
			}
			if d := weightedSqDist(p, centroids[labels[i]], w); d > farthestDist {
				farthest = i
				farthestDist = d
			}
		}
		if farthest < 0 {
			continue
		}
		counts[labels[farthest]]--
		centroids[c] = points[farthest]
		labels[farthest] = c
		counts[c]++
	}
}

func recomputeCentroids(points []dataset.Vector, centroids []dataset.Vector, labels []int) {
	sums := make([]dataset.Vector, len(centroids))
	counts := make([]int, len(centroids))
	for i, p := range points {
		c := labels[i]
		counts[c]++
		for f, v := range p {
			sums[c][f] += v
		}
	}
	for c := range centroids {
		if counts[c] == 0 {
			continue
		}
		for f := range sums[c] {
			centroids[c][f] = sums[c][f] / float64(counts[c])
		}
	}
}
