package ebus

type AggregatorFunc func(name string, value float64)

type Aggregator struct {
	fun AggregatorFunc
}

func RegisterAggregator(aggs ...*Aggregator) {
	aggregatorsLock.Lock()
	defer aggregatorsLock.Unlock()
outer:
	for _, agg := range aggs {
		for _, existing := range aggregators {
			if existing == agg {
				continue outer
			}
		}
		aggregators = append(aggregators, agg)
	}
}

// GearAggregator infers the engaged gear from the speed/RPM ratio and
// publishes it on outputName. ratios holds km/h-per-1000rpm for each gear,
// lowest first; the closest ratio wins. Below idle RPM it reports neutral
// (gear 0).
func GearAggregator(rpmTopic, speedTopic, outputName string, idleRPM float64, ratios []float64) *Aggregator {
	var rpm, speed float64
	var rpmSeen, speedSeen bool
	return &Aggregator{
		fun: func(name string, value float64) {
			switch name {
			case rpmTopic:
				rpm = value
				rpmSeen = true
			case speedTopic:
				speed = value
				speedSeen = true
			default:
				return
			}
			if !rpmSeen || !speedSeen {
				return
			}
			if rpm < idleRPM || speed < 1 {
				Publish(outputName, 0)
				return
			}
			ratio := speed / (rpm / 1000)
			best := 0
			for i, r := range ratios {
				if abs(ratio-r) < abs(ratio-ratios[best]) {
					best = i
				}
			}
			Publish(outputName, float64(best+1))
		},
	}
}

// DiffAggregator publishes second-first whenever both inputs have updated.
func DiffAggregator(first, second, outputName string) *Aggregator {
	var firstUpdated, secondUpdated bool
	var firstValue, secondValue float64
	return &Aggregator{
		fun: func(name string, value float64) {
			if name == first {
				firstValue = value
				firstUpdated = true
			}
			if name == second {
				secondValue = value
				secondUpdated = true
			}
			if firstUpdated && secondUpdated {
				Publish(outputName, secondValue-firstValue)
				firstUpdated, secondUpdated = false, false
			}
		},
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
