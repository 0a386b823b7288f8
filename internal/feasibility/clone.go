package feasibility

// Clone returns a deep copy of the plan. No slice is shared with the
// receiver, so mutating the copy never touches the original.
func (p TripPlan) Clone() TripPlan {
	out := p
	if p.Cities != nil {
		out.Cities = make([]string, len(p.Cities))
		copy(out.Cities, p.Cities)
	}
	if p.Days != nil {
		out.Days = make([]TripDay, len(p.Days))
		for i, d := range p.Days {
			out.Days[i] = d.Clone()
		}
	}
	return out
}

func (d TripDay) Clone() TripDay {
	out := d
	if d.Activities != nil {
		out.Activities = make([]Activity, len(d.Activities))
		copy(out.Activities, d.Activities)
	}
	return out
}
