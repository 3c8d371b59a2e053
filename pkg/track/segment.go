package track

//Run is a maximal stretch of frames that are all null or all detected
type Run struct {
	Null bool
	Len  int
}

//Range is a half-open frame interval [Start, End) of a track
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

//Len returns the number of frames in r
func (r Range) Len() int {
	return r.End - r.Start
}

//Runs returns the run-length encoding of the null pattern of t, in frame order
func Runs(t Track) []Run {
	runs := make([]Run, 0)
	for _, p := range t {
		null := p == nil
		if n := len(runs); n > 0 && runs[n-1].Null == null {
			runs[n-1].Len++
			continue
		}
		runs = append(runs, Run{Null: null, Len: 1})
	}
	return runs
}

//Split partitions a filtered track into the subtracks that are worth interpolating.
//
//An inner gap breaks the current subtrack when it is maxGap frames or longer, or when the ball would
//have to travel more than maxDistGap pixels per missing frame to cross it. Leading and trailing gaps
//never break a subtrack. Subtracks of minTrack frames or fewer are dropped. After a break the next
//subtrack starts on the last frame of the breaking gap.
func Split(t Track, maxGap int, maxDistGap float64, minTrack int) []Range {
	runs := Runs(t)

	result := make([]Range, 0)
	cursor, start := 0, 0
	for i, run := range runs {
		if run.Null && i > 0 && i < len(runs)-1 {
			dist := t[cursor-1].Dist(*t[cursor+run.Len])
			if run.Len >= maxGap || dist/float64(run.Len) > maxDistGap {
				if cursor-start > minTrack {
					result = append(result, Range{Start: start, End: cursor})
				}
				start = cursor + run.Len - 1
			}
		}
		cursor += run.Len
	}

	if len(t)-start > minTrack {
		result = append(result, Range{Start: start, End: len(t)})
	}

	return result
}
