package track

//workList holds the outlier candidates still to be visited. Dropping the candidate under the cursor
//shifts the rest left before the cursor moves on, so the candidate right after a dropped one is passed
//over. The filter results depend on this order.
type workList struct {
	items  []int
	cursor int
}

func (w *workList) current() (int, bool) {
	if w.cursor >= len(w.items) {
		return 0, false
	}
	return w.items[w.cursor], true
}

func (w *workList) keep() {
	w.cursor++
}

func (w *workList) drop() {
	w.items = append(w.items[:w.cursor], w.items[w.cursor+1:]...)
	w.cursor++
}

//outlierCandidates returns the ascending indices whose jump is larger than maxDist
func outlierCandidates(d DistanceSeries, maxDist float64) *workList {
	w := &workList{}
	for i := range d {
		if d.Exceeds(i, maxDist) {
			w.items = append(w.items, i)
		}
	}
	return w
}

//RemoveOutliers nulls the points responsible for jumps larger than maxDist and returns how many
//points it removed. d must be the distance series of t before any filtering; it is not refreshed
//while points are removed.
//
//For a large jump into frame i, frame i is the culprit when the jump out of it is large too or can
//not be measured. Otherwise frame i-1 is removed and i stays in the candidate list.
func RemoveOutliers(t Track, d DistanceSeries, maxDist float64) int {
	removed := 0
	null := func(i int) {
		if i < 0 || i >= len(t) || t[i] == nil {
			return
		}
		t[i] = nil
		removed++
	}

	w := outlierCandidates(d, maxDist)
	for {
		i, ok := w.current()
		if !ok {
			break
		}
		if i+1 >= len(d) {
			break
		}

		if !d[i+1].Valid || d[i+1].Value > maxDist {
			null(i)
			w.drop()
		} else {
			null(i - 1)
			w.keep()
		}
	}

	return removed
}
