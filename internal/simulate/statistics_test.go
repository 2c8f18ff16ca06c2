package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatisticsAccumulates(t *testing.T) {
	s := &Statistics{}
	s.Add(GameResult{EV: 0.1, Rounds: 100})
	s.Add(GameResult{EV: -0.1, Rounds: 200})
	s.Add(GameResult{EV: 0.3, Rounds: 50})
	s.Add(GameResult{EV: -0.3, Rounds: 150, Bankrupt: true})

	assert.Equal(t, 4, s.Games)
	assert.Equal(t, 500, s.Rounds)
	assert.Equal(t, 1, s.Bankruptcies)
	assert.InDelta(t, 0.0, s.MeanEV(), 1e-12)
	assert.InDelta(t, 0.2582, s.StdDev(), 1e-4)
	assert.InDelta(t, 0.1291, s.StdError(), 1e-4)
	assert.InDelta(t, 25.0, s.BankruptcyPercent(), 1e-12)
}

func TestStatisticsConfidenceInterval(t *testing.T) {
	s := &Statistics{}
	for _, ev := range []float64{-0.02, -0.04, -0.06, -0.08} {
		s.Add(GameResult{EV: ev})
	}

	low, high := s.ConfidenceInterval95()
	assert.Less(t, low, s.MeanEV())
	assert.Greater(t, high, s.MeanEV())
	assert.InDelta(t, s.MeanEV()-low, high-s.MeanEV(), 1e-12)
	assert.InDelta(t, 5.0, s.HouseEdgePercent(), 1e-12)
}

func TestStatisticsMerge(t *testing.T) {
	a := &Statistics{}
	a.Add(GameResult{EV: 0.2, Rounds: 10})
	a.Add(GameResult{EV: 0.4, Rounds: 10, Bankrupt: true})

	b := &Statistics{}
	b.Add(GameResult{EV: -0.2, Rounds: 30})
	b.Add(GameResult{EV: -0.4, Rounds: 30})

	a.Merge(b)
	assert.Equal(t, 4, a.Games)
	assert.Equal(t, 80, a.Rounds)
	assert.Equal(t, 1, a.Bankruptcies)
	assert.InDelta(t, 0.0, a.MeanEV(), 1e-12)
}

func TestStatisticsEmpty(t *testing.T) {
	s := &Statistics{}
	assert.Equal(t, 0.0, s.MeanEV())
	assert.Equal(t, 0.0, s.StdDev())
	assert.Equal(t, 0.0, s.StdError())
	assert.Equal(t, 0.0, s.BankruptcyPercent())
}
