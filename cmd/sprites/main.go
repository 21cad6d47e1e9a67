// Command sprites animates thousands of textured sprites through the quad
// expander, with an optional glTF model in the middle of the screen.
//
// Assets are read from ./assets and ./cmd/sprites/assets, in that order.
//
package main

import (
	"bytes"
	"flag"
	"image"
	"image/color"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/db47h/nucleus"
	"github.com/db47h/nucleus/app"
	"github.com/db47h/nucleus/app/event"
	"github.com/db47h/nucleus/assets"
	"github.com/db47h/nucleus/atlas"
	"github.com/db47h/nucleus/batch"
	"github.com/db47h/nucleus/debug"
	"github.com/db47h/nucleus/gl"
	"github.com/db47h/nucleus/gltfmesh"
	"github.com/db47h/nucleus/loop"
	"github.com/db47h/nucleus/quad"
	"github.com/db47h/nucleus/shader"
	"github.com/db47h/nucleus/texture"
	"github.com/db47h/ofs"
	gogl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	var (
		cfgName = flag.String("config", "sprites.yaml", "configuration file, relative to the asset directories")
		verbose = flag.Bool("debug", false, "enable debug logs")
	)
	flag.Parse()

	var (
		log *zap.Logger
		err error
	)
	if *verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(log, *cfgName); err != nil {
		log.Error("sprites", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.Logger, cfgName string) error {
	var ovl ofs.Overlay
	if err := ovl.Add(false, "assets", "cmd/sprites/assets"); err != nil {
		return err
	}
	mgr := assets.NewManager(&ovl,
		assets.FilePath("."),
		assets.ShaderPath("shaders"),
		assets.AtlasPath("atlases"),
		assets.ModelPath("models"),
		assets.Logger(log))
	defer mgr.Close()

	data, err := mgr.File(cfgName)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(err, cfgName)
	}

	// preload
	spriteVariant, err := shader.SelectVariant(shader.SpriteCategory(), shader.PassMain, shader.Textured)
	if err != nil {
		return err
	}
	mgr.LoadVariant(spriteVariant)
	mgr.LoadAtlas(cfg.Atlas)
	modelVariant, err := shader.SelectVariant(shader.GLTFCategory(), shader.PassMain, shader.PBR)
	if err != nil {
		return err
	}
	if cfg.Model != "" {
		mgr.LoadVariant(modelVariant)
		mgr.LoadModel(cfg.Model)
	}

	if err := app.Init(); err != nil {
		return err
	}
	defer app.Terminate()

	opts := []app.WindowOption{
		app.Title(cfg.Window.Title),
		app.Size(cfg.Window.Width, cfg.Window.Height),
		app.Logger(log),
	}
	if cfg.Window.FullScreen {
		opts = append(opts, app.FullScreen())
	}
	if !cfg.Window.VSync {
		opts = append(opts, app.SwapInterval(0))
	}
	win, err := app.NewWindow(opts...)
	if err != nil {
		return err
	}
	defer win.Destroy()

	profile := win.Profile()
	if cfg.Profile != nil {
		profile = *cfg.Profile
	}
	ctx := nucleus.NewContext(nucleus.WithLogger(log), nucleus.WithProfile(profile))

	if err := mgr.Wait(); err != nil {
		return err
	}

	s, err := newSprites(ctx, mgr, spriteVariant, cfg)
	if err != nil {
		return err
	}
	defer s.delete()

	var m *model
	if cfg.Model != "" {
		if m, err = newModel(ctx, mgr, modelVariant, cfg); err != nil {
			return err
		}
		defer m.delete()
	}

	g := &game{
		win:     win,
		sprites: s,
		model:   m,
		h:       loop.NewHandoff(),
		log:     log,
	}
	gogl.ClearColor(0, 0, 0.25, 1)
	gogl.Enable(gogl.BLEND)
	gogl.BlendFunc(gogl.SRC_ALPHA, gogl.ONE_MINUS_SRC_ALPHA)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		g.logic()
	}()

	var l loop.FixedStep
	l.Run(g)

	g.h.Close()
	wg.Wait()
	return g.err
}

// sprites groups the GPU and CPU side of the sprite batch.
//
type sprites struct {
	prog  *shader.Program
	exp   *quad.Expander
	batch *batch.Batch
	tex   *texture.Texture
	scene *scene
}

func newSprites(ctx *nucleus.Context, mgr *assets.Manager, v shader.Variant, cfg config) (*sprites, error) {
	at, err := mgr.Atlas(cfg.Atlas)
	if err != nil {
		return nil, err
	}
	vs, fs, err := mgr.VariantSources(v)
	if err != nil {
		return nil, err
	}
	prog, err := gl.Link(vs, fs, shader.SpriteCategory(),
		shader.Offsets(cfg.Offsets),
		shader.WithHooks(shader.SpriteHooks(ctx, at)),
		shader.Logger(ctx.Log))
	if err != nil {
		return nil, err
	}
	spv := prog.Layout().VertexStride(shader.Interleaved)
	exp, err := quad.NewExpander(quad.NewStore(cfg.Sprites, spv, spv), prog.Table(),
		quad.UVAtlas(at, ctx.Profile),
		quad.Logger(ctx.Log))
	if err != nil {
		gl.Release(prog)
		return nil, err
	}
	if exp.PerFrameUV() {
		prog.Uniforms().Set(shader.TextureData, float32(at.FrameCount()), 1)
	}
	b, err := batch.New(prog, exp, batch.Workers(cfg.Workers), batch.Logger(ctx.Log))
	if err != nil {
		gl.Release(prog)
		return nil, err
	}
	half := mgl32.Vec2{float32(cfg.Window.Width) / 2, float32(cfg.Window.Height) / 2}
	sc, err := newScene(exp, at.FrameCount(), half, time.Now().UnixNano())
	if err != nil {
		b.Delete()
		gl.Release(prog)
		return nil, err
	}
	return &sprites{
		prog:  prog,
		exp:   exp,
		batch: b,
		tex:   texture.FromImage(spriteSheet(at), texture.Filter(texture.Linear, texture.Linear)),
		scene: sc,
	}, nil
}

func (s *sprites) delete() {
	s.batch.Delete()
	s.tex.Delete()
	gl.Release(s.prog)
}

// spriteSheet draws one colored disc per atlas frame, each one with a
// notch at a different angle so that animation is visible.
//
func spriteSheet(at *atlas.Atlas) image.Image {
	const size = 256
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	n := at.FrameCount()
	for i := 0; i < n; i++ {
		uv := at.Frame(i)
		r := image.Rect(int(uv[0]*size), int(uv[1]*size), int(uv[6]*size), int(uv[7]*size))
		c := mgl32.Vec2{float32(r.Min.X+r.Max.X) / 2, float32(r.Min.Y+r.Max.Y) / 2}
		rad := float32(min(r.Dx(), r.Dy())) / 2
		notch := mgl32.Rotate2D(float32(i) * 2 * 3.14159265 / float32(n)).Mul2x1(mgl32.Vec2{rad * 0.6, 0})
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				p := mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5}.Sub(c)
				if p.Len() > rad {
					continue
				}
				if p.Sub(notch).Len() < rad*0.25 {
					img.SetNRGBA(x, y, color.NRGBA{A: 255})
					continue
				}
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
	return img
}

// model is a glTF primitive drawn with the PBR program.
//
type model struct {
	prog  *shader.Program
	mesh  *batch.Mesh
	white *texture.Texture
}

func newModel(ctx *nucleus.Context, mgr *assets.Manager, v shader.Variant, cfg config) (*model, error) {
	doc, err := mgr.Model(cfg.Model)
	if err != nil {
		return nil, err
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, errors.Errorf("%s: no mesh primitive", cfg.Model)
	}
	vs, fs, err := mgr.VariantSources(v)
	if err != nil {
		return nil, err
	}
	prog, err := gl.Link(vs, fs, shader.GLTFCategory(),
		shader.Offsets(shader.Static),
		shader.WithHooks(shader.GLTFHooks(ctx)),
		shader.Logger(ctx.Log))
	if err != nil {
		return nil, err
	}
	gm, err := gltfmesh.Build(doc, doc.Meshes[0].Primitives[0], prog.Layout())
	if err != nil {
		gl.Release(prog)
		return nil, errors.Wrap(err, cfg.Model)
	}
	gm.Apply(prog.Uniforms())
	mesh, err := batch.NewMesh(prog, gm.Vertices, gm.Indices)
	if err != nil {
		gl.Release(prog)
		return nil, err
	}
	white := texture.New(1, 1)
	white.SetSubImage(image.Rect(0, 0, 1, 1), image.NewUniform(color.White), image.Point{})
	ctx.Log.Info("model loaded",
		zap.String("name", cfg.Model),
		zap.Int("vertices", gm.VertexCount),
		zap.Int("indices", len(gm.Indices)))
	return &model{prog: prog, mesh: mesh, white: white}, nil
}

func (m *model) delete() {
	m.mesh.Delete()
	m.white.Delete()
	gl.Release(m.prog)
}

// game runs the render side of the demo on the main thread and the logic
// side on its own goroutine.
//
type game struct {
	win     *app.Window
	sprites *sprites
	model   *model
	h       *loop.Handoff
	up      gl.Context
	log     *zap.Logger

	pan       mgl32.Vec2
	spin      float32
	angle     float32
	frameTime debug.Timer
	logicTime debug.Timer
	mu        sync.Mutex // guards logicTime
	scatter   atomic.Bool
	last      time.Time
	err       error
}

func (g *game) logic() {
	last := time.Now()
	for g.h.Logic(func() {
		now := time.Now()
		dt := now.Sub(last)
		if dt > 100*time.Millisecond {
			dt = 100 * time.Millisecond
		}
		last = now
		g.sprites.scene.step(float32(dt.Seconds()))
		if g.scatter.Swap(false) {
			g.sprites.scene.scatter()
			g.sprites.batch.Expand()
		}
		g.mu.Lock()
		g.logicTime.Add(time.Since(now))
		g.mu.Unlock()
	}) {
	}
}

func (g *game) ProcessEvents() bool {
	quit := g.win.ProcessEvents()
	v := g.win.Screen().View()
	const speed = 400 // pixels per second
	for _, ev := range g.win.Events() {
		switch e := ev.(type) {
		case event.KeyDown:
			if e.Repeat {
				continue
			}
			switch glfw.Key(e.Key) {
			case glfw.KeyEscape:
				g.win.Close()
			case glfw.KeyLeft, glfw.KeyA:
				g.pan[0] -= speed
			case glfw.KeyRight, glfw.KeyD:
				g.pan[0] += speed
			case glfw.KeyUp, glfw.KeyW:
				g.pan[1] += speed
			case glfw.KeyDown, glfw.KeyS:
				g.pan[1] -= speed
			case glfw.KeyQ:
				g.spin -= 1
			case glfw.KeyE:
				g.spin += 1
			case glfw.KeyR:
				g.scatter.Store(true)
			case glfw.KeyHome:
				v.Center = nucleus.Point{}
				v.Scale = 1
				v.Angle = 0
			}
		case event.KeyUp:
			switch glfw.Key(e.Key) {
			case glfw.KeyLeft, glfw.KeyA:
				g.pan[0] += speed
			case glfw.KeyRight, glfw.KeyD:
				g.pan[0] -= speed
			case glfw.KeyUp, glfw.KeyW:
				g.pan[1] -= speed
			case glfw.KeyDown, glfw.KeyS:
				g.pan[1] += speed
			case glfw.KeyQ:
				g.spin += 1
			case glfw.KeyE:
				g.spin -= 1
			}
		case event.Scroll:
			v.Scale *= 1 + float32(e.DY)/16
		case event.MouseButton:
			if e.Pressed {
				p := v.ScreenToWorld(image.Pt(int(e.Pos.X), int(e.Pos.Y)))
				g.log.Debug("click", zap.Stringer("world", p))
			}
		}
	}
	return quit
}

func (g *game) Update(dt time.Duration) {
	v := g.win.Screen().View()
	s := float32(dt.Seconds())
	if v.Scale != 0 {
		v.Center = v.Center.Add(nucleus.Pt(g.pan[0], g.pan[1]).Mul(s / v.Scale))
	}
	v.Angle += g.spin * s
	g.angle += s
}

func (g *game) Draw(ft, _ time.Duration) {
	g.win.UpdateViewport()
	gogl.Clear(gogl.COLOR_BUFFER_BIT)

	v := g.win.Screen().View()
	mv, proj := v.ModelViewMatrix(), v.ProjectionMatrix()
	sz := v.Size()

	u := g.sprites.prog.Uniforms()
	u.SetMatrices(mv, proj)
	u.Set(shader.ScreenSize, float32(sz.X), float32(sz.Y))
	g.h.Render(func() {
		g.sprites.tex.Bind(0)
		if err := g.sprites.batch.Flush(g.up); err != nil {
			g.fail(err)
		}
	})

	if m := g.model; m != nil {
		scale := float32(min(sz.X, sz.Y)) / 4
		u := m.prog.Uniforms()
		u.SetMatrices(mv.Mul4(mgl32.HomogRotate3DY(g.angle)).Mul4(mgl32.Scale3D(scale, scale, scale)), proj)
		u.Set(shader.ViewPos, 0, 0, 1000)
		m.white.Bind(0)
		if err := m.mesh.Draw(g.up); err != nil {
			g.fail(err)
		}
	}

	g.frameTime.Add(ft)
	if now := time.Now(); now.Sub(g.last) >= 5*time.Second {
		g.last = now
		g.frameTime.Log(g.log, "frame")
		g.mu.Lock()
		g.logicTime.Log(g.log, "logic")
		g.mu.Unlock()
	}
}

func (g *game) fail(err error) {
	if g.err == nil {
		g.err = err
		g.win.Close()
	}
}
