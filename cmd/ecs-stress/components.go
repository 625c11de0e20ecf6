package main

import (
	"math/rand"

	"github.com/plus3/oxide/ecs"
)

type frame struct {
	Tick int64
}

type data struct {
	V int64
	W int64
}

type Comp0 data
type Comp1 data
type Comp2 data
type Comp3 data
type Comp4 data
type Comp5 data
type Comp6 data
type Comp7 data

const componentCount = 8

type comp interface {
	~struct {
		V int64
		W int64
	}
}

func registerComponents(w *ecs.World[frame]) {
	ecs.Register[Comp0](w)
	ecs.Register[Comp1](w)
	ecs.Register[Comp2](w)
	ecs.Register[Comp3](w)
	ecs.Register[Comp4](w)
	ecs.Register[Comp5](w)
	ecs.Register[Comp6](w)
	ecs.Register[Comp7](w)
}

func randomComponent(rng *rand.Rand) any {
	d := data{V: rng.Int63n(100), W: rng.Int63n(100)}
	switch rng.Intn(componentCount) {
	case 0:
		return Comp0(d)
	case 1:
		return Comp1(d)
	case 2:
		return Comp2(d)
	case 3:
		return Comp3(d)
	case 4:
		return Comp4(d)
	case 5:
		return Comp5(d)
	case 6:
		return Comp6(d)
	default:
		return Comp7(d)
	}
}

// spawnRandomEntity creates an entity with up to n random components. Picking
// the same kind twice keeps the last value, so some entities get fewer.
func spawnRandomEntity(w *ecs.World[frame], rng *rand.Rand, n int) ecs.Entity {
	return w.Entity(func(b *ecs.EntityBuilder) {
		for i := 0; i < n; i++ {
			b.With(randomComponent(rng))
		}
	})
}

// transfer adds every From to the To of the same entity.
func transfer[From, To comp](w *ecs.World[frame], _ *frame) {
	from := ecs.Get[From](w)
	to := ecs.GetMut[To](w)

	for e := range w.Entities() {
		f, ok := from.Get(e)
		t := to.At(e)
		if !ok || t == nil {
			continue
		}
		src := data(f)
		dst := data(*t)
		dst.V += src.V
		dst.W = (dst.W + src.W) % 1000
		*t = To(dst)
	}
}

// churn queues one new entity per tick through the command buffer.
func churn(rng *rand.Rand) ecs.System[frame] {
	return func(w *ecs.World[frame], f *frame) {
		w.Commands().Spawn(randomComponent(rng), randomComponent(rng))
	}
}

func registerSystems(w *ecs.World[frame], rng *rand.Rand, systems int) {
	all := []ecs.System[frame]{
		transfer[Comp0, Comp1],
		transfer[Comp1, Comp2],
		transfer[Comp2, Comp3],
		transfer[Comp3, Comp4],
		transfer[Comp4, Comp5],
		transfer[Comp5, Comp6],
		transfer[Comp6, Comp7],
		transfer[Comp7, Comp0],
	}
	for i := 0; i < systems; i++ {
		w.System(all[i%len(all)])
	}
	w.System(churn(rng))
}
