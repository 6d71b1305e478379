package system

import (
	"math"
	"testing"

	"github.com/milk9111/hamlets-descent/ecs"
	"github.com/milk9111/hamlets-descent/ecs/component"
)

func TestPlatformOscillation(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	platform := &component.Platform{
		Width: 150, Height: 20,
		Moving:    true,
		AnchorX:   500,
		Amplitude: 200,
		Speed:     120,
	}
	if err := ecs.Add(w, e, component.PlatformComponent.Kind(), platform); err != nil {
		t.Fatal(err)
	}
	pos := &component.Transform{X: 500, Y: 400}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), pos); err != nil {
		t.Fatal(err)
	}
	w.AddSystem(NewPlatformSystem())

	// long enough to cross both bounds several times
	sawLeft, sawRight := false, false
	for i := 0; i < 60*30; i++ {
		w.Step(tick)
		if d := math.Abs(pos.X - platform.AnchorX); d > platform.Amplitude {
			t.Fatalf("step %d: displacement %v exceeds amplitude %v", i, d, platform.Amplitude)
		}
		if pos.X == platform.AnchorX-platform.Amplitude {
			sawLeft = true
		}
		if pos.X == platform.AnchorX+platform.Amplitude {
			sawRight = true
		}
	}
	if !sawLeft || !sawRight {
		t.Fatalf("expected the platform to reach both bounds, left=%v right=%v", sawLeft, sawRight)
	}
}

func TestPlatformStaticStaysPut(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{Width: 150, Height: 20}); err != nil {
		t.Fatal(err)
	}
	pos := &component.Transform{X: 300, Y: 450}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), pos); err != nil {
		t.Fatal(err)
	}
	w.AddSystem(NewPlatformSystem())

	w.Step(tick)
	if pos.X != 300 || pos.Y != 450 {
		t.Fatalf("static platform must not move, got (%v,%v)", pos.X, pos.Y)
	}
}
