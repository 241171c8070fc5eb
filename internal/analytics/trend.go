package analytics

// SummarizeAttempts computes the recent full-test trend over a newest-first
// list of scored attempts. A nil score is excluded from its mean but rendered
// as 0 in the per-attempt row. Means are rounded to the nearest multiple of
// 5; maxima are reported exactly.
func SummarizeAttempts(attempts []ScoredAttempt) TrendSummary {
	summary := TrendSummary{RecentTests: make([]AttemptRow, 0, len(attempts))}

	var totalMean, listeningMean, readingMean meanTracker
	for _, a := range attempts {
		row := AttemptRow{ID: a.ID, Name: a.TestName, CreatedAt: a.CreatedAt}
		if a.TotalScore != nil {
			row.TotalScore = *a.TotalScore
			totalMean.add(*a.TotalScore)
			if *a.TotalScore > summary.HighestScore {
				summary.HighestScore = *a.TotalScore
			}
		}
		if a.ListeningScore != nil {
			row.ListeningScore = *a.ListeningScore
			listeningMean.add(*a.ListeningScore)
			if *a.ListeningScore > summary.MaxListeningScore {
				summary.MaxListeningScore = *a.ListeningScore
			}
		}
		if a.ReadingScore != nil {
			row.ReadingScore = *a.ReadingScore
			readingMean.add(*a.ReadingScore)
			if *a.ReadingScore > summary.MaxReadingScore {
				summary.MaxReadingScore = *a.ReadingScore
			}
		}
		summary.RecentTests = append(summary.RecentTests, row)
	}

	summary.AverageScore = totalMean.roundedTo5()
	summary.AverageListeningScore = listeningMean.roundedTo5()
	summary.AverageReadingScore = readingMean.roundedTo5()

	return summary
}

type meanTracker struct {
	sum   int
	count int
}

func (m *meanTracker) add(v int) {
	m.sum += v
	m.count++
}

func (m *meanTracker) roundedTo5() int {
	if m.count == 0 {
		return 0
	}
	return RoundTo5(float64(m.sum) / float64(m.count))
}
