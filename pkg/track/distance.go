package track

//Distance is the jump between a frame and the one before it. Valid is false when either frame has no
//point or the frame is one of the leading sentinels.
type Distance struct {
	Value float64
	Valid bool
}

//DistanceSeries runs parallel to a Track
type DistanceSeries []Distance

//Distances computes the frame-to-frame distance series of t. It does not modify t.
func Distances(t Track) DistanceSeries {
	d := make(DistanceSeries, len(t))
	for i := Sentinels; i < len(t); i++ {
		if t[i] != nil && t[i-1] != nil {
			d[i] = Distance{Value: t[i].Dist(*t[i-1]), Valid: true}
		}
	}
	return d
}

//Exceeds reports whether entry i is defined and larger than max
func (d DistanceSeries) Exceeds(i int, max float64) bool {
	return d[i].Valid && d[i].Value > max
}
