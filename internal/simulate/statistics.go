// Package simulate replays many independent game sessions under an
// automated strategy and aggregates the results into expected-return
// statistics.
package simulate

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// GameResult is the outcome of one simulated session.
type GameResult struct {
	EV            float64
	FinalBankroll float64
	Rounds        int
	Bankrupt      bool
}

// Statistics accumulates per-game EV samples. EV samples are kept so the
// spread and confidence interval can be computed after the run.
type Statistics struct {
	Games        int
	Rounds       int
	Bankruptcies int
	evs          []float64
}

// Add records one finished game.
func (s *Statistics) Add(r GameResult) {
	s.Games++
	s.Rounds += r.Rounds
	if r.Bankrupt {
		s.Bankruptcies++
	}
	s.evs = append(s.evs, r.EV)
}

// Merge folds another statistics block into this one. Workers aggregate
// independently and merge once all their games complete.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Rounds += other.Rounds
	s.Bankruptcies += other.Bankruptcies
	s.evs = append(s.evs, other.evs...)
}

// MeanEV returns the mean per-game expected value.
func (s *Statistics) MeanEV() float64 {
	if s.Games == 0 {
		return 0
	}
	return stat.Mean(s.evs, nil)
}

// StdDev returns the sample standard deviation of the EV samples.
func (s *Statistics) StdDev() float64 {
	if s.Games < 2 {
		return 0
	}
	return stat.StdDev(s.evs, nil)
}

// StdError returns the standard error of the mean EV.
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval of the mean.
func (s *Statistics) ConfidenceInterval95() (low, high float64) {
	mean := s.MeanEV()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// HouseEdgePercent expresses the mean EV as the house's take in percent.
func (s *Statistics) HouseEdgePercent() float64 {
	return -100.0 * s.MeanEV()
}

// BankruptcyPercent returns the share of games that ended bankrupt.
func (s *Statistics) BankruptcyPercent() float64 {
	if s.Games == 0 {
		return 0
	}
	return 100.0 * float64(s.Bankruptcies) / float64(s.Games)
}
