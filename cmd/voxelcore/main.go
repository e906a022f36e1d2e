package main

import (
	"flag"
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/xlab/closer"

	"github.com/leterax/voxelcore/pkg/config"
	"github.com/leterax/voxelcore/pkg/fluid"
	"github.com/leterax/voxelcore/pkg/light"
	"github.com/leterax/voxelcore/pkg/mapview"
	"github.com/leterax/voxelcore/pkg/mesh"
	"github.com/leterax/voxelcore/pkg/reactor"
	"github.com/leterax/voxelcore/pkg/voxel"
	"github.com/leterax/voxelcore/pkg/world"
	"github.com/leterax/voxelcore/pkg/worldgen"
)

func main() {
	runtime.LockOSThread()

	configPath := flag.String("config", "voxelcore.toml", "path to engine config")
	renderMap := flag.String("render-map", "", "if set, render a top-down PNG of the spawn region to this path and exit")
	mapSize := flag.Int("render-map-size", 1024, "output PNG size in pixels for -render-map")
	ticks := flag.Int("ticks", 0, "if > 0, run this many ticks headless and exit instead of looping forever")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("voxelcore: no usable config at %s (%v), using defaults", *configPath, err)
		cfg = config.Default()
	}
	rand.Seed(cfg.Seed)

	types := registerBlocks()
	r := reactor.New()
	w := world.New(types)
	gen := worldgen.NewNoiseGenerator(cfg.Seed, stoneID, dirtID, grassID, waterID, r)
	gc := world.NewGC()

	r.On(reactor.GameQuit{}, func(msg any) {
		q := msg.(reactor.GameQuit)
		log.Printf("voxelcore: shutting down (%s)", q.Reason)
	})

	closer.Bind(func() {
		log.Println("voxelcore: closer hook running, final state flushed")
	})

	if *renderMap != "" {
		generateAround(w, gen, 0, 0, cfg.RenderDistance)
		if err := mapview.Render(w, types, 0, 0, *mapSize, *renderMap); err != nil {
			log.Fatalf("voxelcore: render-map failed: %v", err)
		}
		log.Printf("voxelcore: wrote %s", *renderMap)
		return
	}

	generateAround(w, gen, 0, 0, cfg.RenderDistance)

	tickInterval := time.Second / time.Duration(cfg.TickRate)
	var tick int64
	runLoop := func() bool {
		tick++
		runTick(w, r, gc, cfg, tick)
		r.Dispatch(reactor.GameTick{Tick: tick})
		return *ticks <= 0 || int(tick) < *ticks
	}

	if *ticks > 0 {
		for runLoop() {
		}
		return
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for range ticker.C {
		if !runLoop() {
			break
		}
	}
}

// runTick advances the world one step: GC runs every GCIntervalTicks,
// fluid ticks run every FluidIntervalTicks, and the simple-light,
// complex-light and mesh request queues are drained every tick so a
// newly generated chunk works its way through the full pipeline as
// soon as its neighborhood becomes available.
func runTick(w *world.World, r *reactor.Reactor, gc *world.GC, cfg config.Config, tick int64) {
	if cfg.GCIntervalTicks > 0 && int(tick)%cfg.GCIntervalTicks == 0 {
		gc.Run(w, voxel.ChunkCoord{}, cfg.RenderDistance)
	}

	for _, c := range w.Queue.DrainSimpleLight() {
		chunk, ok := w.Block(c)
		if !ok {
			continue
		}
		lc, ok := w.SimpleLight(c)
		if !ok {
			lc = voxel.NewLightChunk(c, tick)
			w.PutSimpleLight(lc)
		}
		light.Simple(lc, blockQuery{chunk, w.Types})
	}

	if cfg.FluidIntervalTicks > 0 && int(tick)%cfg.FluidIntervalTicks == 0 {
		for _, c := range w.Queue.DrainFluid() {
			tickFluidChunk(w, c, tick)
		}
	}

	for _, c := range w.Queue.DrainComplexLight() {
		tickComplexLight(w, c, tick)
	}

	for _, c := range w.Queue.DrainMesh() {
		meshChunk(w, c)
	}
}

// tickComplexLight computes one chunk's cross-chunk-aware light, given
// its own blocks and its neighbors' simple light, and stores the result
// back into the complex-light arena. A chunk whose 27-neighborhood
// isn't fully resident yet is skipped; GetTriBlocks/GetTriSimpleLight
// have already re-queued whatever's still missing.
func tickComplexLight(w *world.World, c voxel.ChunkCoord, tick int64) {
	triBlocks, blocksOK := w.GetTriBlocks(c)
	triLight, lightOK := w.GetTriSimpleLight(c)
	if !blocksOK || !lightOK {
		// GetTri* already re-queued whichever neighbors were missing;
		// re-queue c itself so this chunk's own complex light is
		// retried once they arrive.
		w.Queue.RequestComplexLight(c)
		return
	}

	lc, ok := w.ComplexLight(c)
	if !ok {
		lc = voxel.NewLightChunk(c, tick)
	}
	light.Complex(lc, blockQuery{triBlocks[13], w.Types}, triLight)
	w.PutComplexLight(lc)
}

// meshChunk assembles a chunk's padded block/light neighborhood and
// runs the greedy mesher over it. There is no GPU-side consumer in this
// headless core, so the result is only logged; a renderer upload is
// outside this module's scope.
func meshChunk(w *world.World, c voxel.ChunkCoord) {
	triBlocks, blocksOK := w.GetTriBlocks(c)
	triLight, lightOK := w.GetTriComplexLight(c)
	if !blocksOK || !lightOK {
		w.Queue.RequestMesh(c)
		return
	}
	in, err := mesh.Assemble(w.Types, triBlocks, triLight)
	if err != nil {
		log.Printf("voxelcore: mesh assemble for %v: %v", c, err)
		return
	}
	res := mesh.Build(in)
	log.Printf("voxelcore: meshed %v: %d vertices", c, len(res.Vertices))
}

func tickFluidChunk(w *world.World, c voxel.ChunkCoord, tick int64) {
	fc, ok := w.Fluid(c)
	if !ok {
		return
	}
	bc, ok := w.Block(c)
	if !ok {
		return
	}
	var buf fluid.Buffers
	buf.Types = w.Types
	for x := 0; x < voxel.ChunkSize; x++ {
		for y := 0; y < voxel.ChunkSize; y++ {
			for z := 0; z < voxel.ChunkSize; z++ {
				buf.Blocks[x+1][y+1][z+1] = bc.Get(x, y, z)
				buf.Fluid[x+1][y+1][z+1] = fc.Get(x, y, z)
			}
		}
	}
	result := fluid.Tick(&buf)
	if !result.Changed {
		fc.MarkQuiescent(tick)
		return
	}
	for x := 0; x < voxel.ChunkSize; x++ {
		for y := 0; y < voxel.ChunkSize; y++ {
			for z := 0; z < voxel.ChunkSize; z++ {
				fc.Set(buf.Fluid[x+1][y+1][z+1], x, y, z, tick)
			}
		}
	}
	fc.MarkUpdated(tick)
}

// blockQuery adapts a *voxel.BlockChunk to light.Blocks, consulting the
// block type table's Solid field rather than just the air/non-air split.
type blockQuery struct {
	c     *voxel.BlockChunk
	types *voxel.BlockTypeTable
}

func (b blockQuery) IsSolid(x, y, z int) bool { return b.types.IsSolid(b.c.Get(x, y, z)) }

func generateAround(w *world.World, gen *worldgen.NoiseGenerator, cx, cz, radius int32) {
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			coord := voxel.ChunkCoord{X: cx + x, Y: 0, Z: cz + z}
			blocks, fluids, _, err := gen.Generate(coord)
			if err != nil {
				log.Printf("voxelcore: worldgen failed for %v: %v", coord, err)
				continue
			}
			w.PutBlock(blocks)
			w.PutFluid(fluids)
			w.Queue.RequestSimpleLight(coord)
			w.Queue.RequestComplexLight(coord)
			w.Queue.RequestFluid(coord)
			w.Queue.RequestMesh(coord)
		}
	}
}

var stoneID, dirtID, grassID, waterID voxel.BlockID

func registerBlocks() *voxel.BlockTypeTable {
	t := voxel.NewBlockTypeTable()
	stoneID = t.Register(voxel.BlockType{
		Name: "stone", Solid: true,
		PaletteColor: voxel.Color{R: 120, G: 120, B: 120},
		MiningCategory: voxel.MiningPickaxe, Health: 30,
	})
	dirtID = t.Register(voxel.BlockType{
		Name: "dirt", Solid: true,
		PaletteColor: voxel.Color{R: 110, G: 80, B: 50},
		MiningCategory: voxel.MiningShovel, Health: 10,
	})
	grassID = t.Register(voxel.BlockType{
		Name: "grass", Solid: true,
		PaletteColor: voxel.Color{R: 80, G: 160, B: 60},
		MiningCategory: voxel.MiningShovel, Health: 10,
	})
	waterID = t.Register(voxel.BlockType{
		Name: "water", Solid: false, Transparent: true,
		PaletteColor: voxel.Color{R: 50, G: 90, B: 200},
	})
	return t
}
