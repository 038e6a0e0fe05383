package recommend

import (
	"fmt"
	"sort"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"gonum.org/v1/gonum/stat"

	"github.com/nkapur/auralist/classify"
	"github.com/nkapur/auralist/logging"
)

// MoodCluster summarizes one group of songs discovered by clustering the
// standardized feature matrix.
type MoodCluster struct {
	DominantMood classify.Label
	Paths        []string
	MeanEnergy   float64
	MeanValence  float64
}

// songObservation wraps a catalog row so k-means can cluster it.
type songObservation struct {
	row    int
	coords clusters.Coordinates
}

func (o songObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o songObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// DiscoverMoodClusters partitions the catalog into k clusters by k-means over
// the standardized feature vectors and labels each cluster with the mood that
// dominates its members. Clusters come back largest first.
func (e *Engine) DiscoverMoodClusters(k int) ([]MoodCluster, error) {
	if k < 1 {
		return nil, fmt.Errorf("cluster count must be positive: %d", k)
	}
	if e.table.Len() < k {
		return nil, fmt.Errorf("catalog has %d songs, cannot form %d clusters", e.table.Len(), k)
	}

	var observations clusters.Observations
	for i, vec := range e.table.Vectors() {
		observations = append(observations, songObservation{
			row:    i,
			coords: clusters.Coordinates(vec),
		})
	}

	km := kmeans.New()
	partitions, err := km.Partition(observations, k)
	if err != nil {
		return nil, fmt.Errorf("k-means partition: %w", err)
	}

	result := make([]MoodCluster, 0, len(partitions))
	for _, partition := range partitions {
		cluster := MoodCluster{}
		moodCounts := make(map[classify.Label]int)
		var energies, valences []float64

		for _, obs := range partition.Observations {
			song, ok := obs.(songObservation)
			if !ok {
				continue
			}
			rec := e.table.Record(song.row)
			cluster.Paths = append(cluster.Paths, rec.FilePath)
			moodCounts[e.MoodOf(song.row)]++
			traits := rec.Traits()
			if traits.Valid() {
				energies = append(energies, traits.Energy)
				valences = append(valences, traits.Valence)
			}
		}

		best, bestCount := classify.MoodUnknown, 0
		for mood, count := range moodCounts {
			if count > bestCount {
				best, bestCount = mood, count
			}
		}
		cluster.DominantMood = best
		if len(energies) > 0 {
			cluster.MeanEnergy = stat.Mean(energies, nil)
			cluster.MeanValence = stat.Mean(valences, nil)
		}

		result = append(result, cluster)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return len(result[i].Paths) > len(result[j].Paths)
	})

	e.logger.Info("Discovered mood clusters", logging.Fields{
		"clusters": len(result),
		"songs":    e.table.Len(),
	})

	return result, nil
}
