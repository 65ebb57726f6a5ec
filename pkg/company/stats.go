package company

import "sort"

const unknownLabel = "(none)"

// Count is the number of companies sharing a key.
type Count struct {
	Key       string
	Companies int
}

// Stats summarizes a dataset by batch and by status.
type Stats struct {
	Total    int
	ByBatch  []Count // most recent batch first, unrecognized batches last
	ByStatus []Count // largest group first
}

func ComputeStats(companies []Company) Stats {
	type batchGroup struct {
		sample Company
		count  int
	}
	batches := map[string]*batchGroup{}
	statuses := map[string]int{}

	for _, c := range companies {
		label := c.Batch
		if label == "" {
			label = unknownLabel
		}
		g, ok := batches[label]
		if !ok {
			g = &batchGroup{sample: Company{Name: label, BatchIndex: c.BatchIndex}}
			batches[label] = g
		}
		g.count++

		status := c.Status
		if status == "" {
			status = unknownLabel
		}
		statuses[status]++
	}

	labels := make([]string, 0, len(batches))
	for label := range batches {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	samples := make([]Company, 0, len(labels))
	for _, label := range labels {
		samples = append(samples, batches[label].sample)
	}
	Sort(samples)

	s := Stats{Total: len(companies)}
	for _, sample := range samples {
		s.ByBatch = append(s.ByBatch, Count{Key: sample.Name, Companies: batches[sample.Name].count})
	}

	for status, n := range statuses {
		s.ByStatus = append(s.ByStatus, Count{Key: status, Companies: n})
	}
	sort.Slice(s.ByStatus, func(i, j int) bool {
		if s.ByStatus[i].Companies != s.ByStatus[j].Companies {
			return s.ByStatus[i].Companies > s.ByStatus[j].Companies
		}
		return s.ByStatus[i].Key < s.ByStatus[j].Key
	})
	return s
}
