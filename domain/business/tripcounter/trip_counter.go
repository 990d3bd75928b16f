package tripcounter

import "sort"

// Entry a key together with the amount of times it was counted
type Entry[K comparable] struct {
	Key   K   `json:"key"`
	Count int `json:"count"`
}

// TripCounter counts how many trips share some value (a station, an hour, a station pair...)
// + counters: amount of trips per key
// + order: keys in the order they were first counted. Used to break ties
type TripCounter[K comparable] struct {
	counters map[K]int
	order    []K
}

func NewTripCounter[K comparable]() *TripCounter[K] {
	return &TripCounter[K]{
		counters: make(map[K]int),
	}
}

func (tc *TripCounter[K]) UpdateCounter(key K) {
	if _, ok := tc.counters[key]; !ok {
		tc.order = append(tc.order, key)
	}
	tc.counters[key] += 1
}

func (tc *TripCounter[K]) GetCounter(key K) int {
	return tc.counters[key]
}

// Len returns the amount of distinct keys counted
func (tc *TripCounter[K]) Len() int {
	return len(tc.order)
}

// MostCommon returns the key with the highest count. When several keys share the highest
// count the one counted first wins. The boolean is false if nothing was counted.
func (tc *TripCounter[K]) MostCommon() (K, int, bool) {
	var mostCommon K
	maxCount := 0
	for _, key := range tc.order {
		if tc.counters[key] > maxCount {
			mostCommon = key
			maxCount = tc.counters[key]
		}
	}
	return mostCommon, maxCount, maxCount > 0
}

// Ranked returns every key sorted by descending count, ties keep first-counted order
func (tc *TripCounter[K]) Ranked() []Entry[K] {
	entries := make([]Entry[K], 0, len(tc.order))
	for _, key := range tc.order {
		entries = append(entries, Entry[K]{Key: key, Count: tc.counters[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Merge returns a new TripCounter with the counts of both counters. Keys only present in
// the second counter are appended after the keys of the first one.
func (tc *TripCounter[K]) Merge(tripCounter2 *TripCounter[K]) *TripCounter[K] {
	merged := NewTripCounter[K]()
	for _, key := range tc.order {
		merged.order = append(merged.order, key)
		merged.counters[key] = tc.counters[key]
	}
	for _, key := range tripCounter2.order {
		if _, ok := merged.counters[key]; !ok {
			merged.order = append(merged.order, key)
		}
		merged.counters[key] += tripCounter2.counters[key]
	}
	return merged
}
