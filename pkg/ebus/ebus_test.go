package ebus_test

import (
	"testing"
	"time"

	"github.com/ItzUsui/MOTO-DASH/pkg/ebus"
)

func TestPublish(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		data    float64
		wantErr bool
	}{
		{
			name:  "rpm update",
			topic: ebus.TopicRPM,
			data:  6500,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr := ebus.Publish(tt.topic, tt.data)
			if gotErr != nil {
				if !tt.wantErr {
					t.Errorf("Publish() failed: %v", gotErr)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("Publish() succeeded unexpectedly")
			}
		})
	}
}

func TestSubscribe(t *testing.T) {
	gotChan := ebus.Subscribe("test.subscribe")
	if gotChan == nil {
		t.Fatal("Subscribe() returned nil channel")
	}
	ebus.Publish("test.subscribe", 3.14)
	select {
	case v := <-gotChan:
		if v != 3.14 {
			t.Errorf("Subscribe() got %v, want 3.14", v)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
	ebus.Unsubscribe(gotChan)
}

func TestSubscribeFunc(t *testing.T) {
	got := make(chan float64, 1)
	cancel := ebus.SubscribeFunc("test.subscribefunc", func(v float64) {
		got <- v
	})
	defer cancel()

	ebus.Publish("test.subscribefunc", 42)
	select {
	case v := <-got:
		if v != 42 {
			t.Errorf("SubscribeFunc() got %v, want 42", v)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
}

func TestGearAggregator(t *testing.T) {
	tests := []struct {
		name     string
		rpm      float64
		speed    float64
		wantGear float64
	}{
		{name: "neutral at idle", rpm: 900, speed: 0, wantGear: 0},
		{name: "first gear", rpm: 4000, speed: 32, wantGear: 1}, // 8 km/h per 1000rpm
		{name: "third gear", rpm: 5000, speed: 80, wantGear: 3}, // 16
		{name: "sixth gear", rpm: 6000, speed: 168, wantGear: 6},
	}

	ratios := []float64{8, 12, 16, 20, 24, 28}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rpmTopic := "test.gear.rpm." + tt.name
			speedTopic := "test.gear.speed." + tt.name
			outTopic := "test.gear.out." + tt.name

			ebus.RegisterAggregator(ebus.GearAggregator(rpmTopic, speedTopic, outTopic, 1000, ratios))
			got := ebus.Subscribe(outTopic)

			ebus.Publish(rpmTopic, tt.rpm)
			ebus.Publish(speedTopic, tt.speed)

			select {
			case v := <-got:
				if v != tt.wantGear {
					t.Errorf("gear = %v, want %v", v, tt.wantGear)
				}
			case <-time.After(time.Second):
				t.Fatal("timed out waiting for gear")
			}
			ebus.Unsubscribe(got)
		})
	}
}
