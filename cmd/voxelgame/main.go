package main

import (
	"fmt"
	"log"
	"runtime"

	"voxelgame/internal/camera"
	"voxelgame/internal/config"
	"voxelgame/internal/input"
	"voxelgame/internal/player"
	"voxelgame/internal/render"
	"voxelgame/internal/terrain"
	"voxelgame/internal/ui"
	"voxelgame/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "Voxel Game"
)

func init() {
	// GLFW requires this to run on main thread
	runtime.LockOSThread()
}

func main() {
	cfg := config.Load()

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize OpenGL:", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0.53, 0.81, 0.92, 1.0) // Sky blue

	log.Println("OpenGL version:", gl.GoStr(gl.GetString(gl.VERSION)))

	// glctx documents, at the type level, that every GL-calling function
	// from here on must run on this locked OS thread.
	glctx := render.NewGLContext()

	pixelFont, err := ui.LoadFont("assets/fonts/PixelifySans-Regular.ttf", 24, true)
	if err != nil {
		log.Fatalf("failed to load font: %v. Make sure assets/fonts/PixelifySans-Regular.ttf exists!", err)
	}

	atlas, err := render.LoadAtlas(glctx, "assets/atlas.png", "assets/water_strip.png")
	if err != nil {
		log.Fatalf("failed to load texture atlas: %v", err)
	}
	log.Printf("loaded texture atlas (ID: %d)", atlas.ID)

	cam := camera.NewCamera(windowWidth, windowHeight)

	renderer, err := render.NewRenderer(glctx)
	if err != nil {
		log.Fatalln("failed to create renderer:", err)
	}

	uiRenderer, err := ui.NewUIRenderer(windowWidth, windowHeight)
	if err != nil {
		log.Fatalln("failed to create UI renderer:", err)
	}
	defer uiRenderer.Cleanup()

	crosshair := ui.NewCrosshair(windowWidth, windowHeight)
	if err := uiRenderer.AddElement(crosshair); err != nil {
		log.Fatalln("failed to add crosshair:", err)
	}

	hotbar := ui.NewHotbar(windowWidth, windowHeight)
	if err := uiRenderer.AddElement(hotbar); err != nil {
		log.Fatalln("failed to add hotbar:", err)
	}

	fpsText := ui.NewText(pixelFont, "FPS: 0", 10, 30, 1.0, mgl32.Vec3{1.0, 1.0, 0.0})
	if err := fpsText.Init(); err != nil {
		log.Fatalln("failed to init text:", err)
	}
	if err := uiRenderer.AddElement(fpsText); err != nil {
		log.Fatalln("failed to add text:", err)
	}

	debugLayer := ui.NewDebugLayer(pixelFont, windowWidth, windowHeight)
	if err := uiRenderer.AddElement(debugLayer); err != nil {
		log.Fatalln("failed to add debug layer:", err)
	}

	notifications := ui.NewNotificationSystem(pixelFont, windowWidth, windowHeight)
	if err := uiRenderer.AddElement(notifications); err != nil {
		log.Fatalln("failed to add notification system:", err)
	}
	notifications.Add(fmt.Sprintf("World seed %d", cfg.WorldSeed))

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		cam.SetSize(width, height)
		const targetUIHeight = 720.0
		uiScale := float32(height) / targetUIHeight

		logicalWidth := int(float32(width) / uiScale)
		logicalHeight := int(float32(height) / uiScale)
		uiRenderer.Resize(logicalWidth, logicalHeight)

		screenSize := &ui.ScreenSize{Width: logicalWidth, Height: logicalHeight}
		crosshair.Update(screenSize)
		hotbar.Update(screenSize)
		notifications.Update(screenSize)
	})

	generator := terrain.NewGenerator(cfg.WorldSeed)
	worldCfg := world.Config{
		Seed:              cfg.WorldSeed,
		RenderDistance:    cfg.RenderDistance,
		MaxVerticalChunks: 8,
	}
	gameWorld := world.New(worldCfg, generator)

	p := player.NewPlayer(cam, gameWorld)

	wireframeMode := false
	inputMgr := input.NewInputManager(window, cam, p, &wireframeMode)

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	meshQueue := render.NewMeshQueue(cfg.WorkerCount)
	defer meshQueue.Close()

	lastTime := glfw.GetTime()
	frameCount := 0
	fpsTime := glfw.GetTime()
	currentFPS := 0.0

	var lastSelectedBlock world.VoxelID = world.Air
	debugVisible := false

	for !window.ShouldClose() {
		glfw.PollEvents()

		currentTime := glfw.GetTime()
		deltaTime := float32(currentTime - lastTime)
		lastTime = currentTime

		frameCount++
		if currentTime-fpsTime >= 1.0 {
			currentFPS = float64(frameCount) / (currentTime - fpsTime)
			fpsText.SetContent(fmt.Sprintf("FPS: %.0f", currentFPS))
			fpsText.Update(nil)
			frameCount = 0
			fpsTime = currentTime
		}

		inputMgr.Update(deltaTime)

		if !inputMgr.IsDebugMode() {
			p.Update(deltaTime)
		}

		gameWorld.Update(float64(cam.Position[0]), float64(cam.Position[1]), float64(cam.Position[2]))
		chunks := gameWorld.Chunks()

		render.ScanAndEnqueue(meshQueue, chunks, float64(cam.Position[0]), float64(cam.Position[1]), float64(cam.Position[2]))
		meshQueue.DrainUploads(func(c *world.Chunk, m *world.ChunkMesh) {
			renderer.UploadChunkMesh(glctx, c, m)
		})

		selectedBlock := inputMgr.GetSelectedBlock()
		if selectedBlock != lastSelectedBlock {
			hotbar.Update(selectedBlock)
			lastSelectedBlock = selectedBlock
		}

		if inputMgr.IsActionJustPressed("TOGGLE_DEBUG") {
			debugVisible = debugLayer.Toggle()
			state := "off"
			color := mgl32.Vec3{0.6, 0.6, 0.6}
			if debugVisible {
				state = "on"
				color = mgl32.Vec3{1.0, 0.8, 0.2}
			}
			notifications.AddWithColor(fmt.Sprintf("Debug overlay %s", state), color)
		}
		if debugVisible {
			chunkX := int(cam.Position[0]) / world.ChunkSize
			chunkZ := int(cam.Position[2]) / world.ChunkSize
			debugLayer.UpdateInfo(currentFPS, cam.Position, chunkX, chunkZ, cam.Front)
			debugLayer.UpdateStreaming(len(chunks), meshQueue.Len())
		}
		debugLayer.Update(nil)
		notifications.Update(nil)

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		frameParams := render.FrameParams{
			Cam:         cam,
			Atlas:       atlas,
			TimeSeconds: float32(currentTime),
			WaterFPS:    float32(cfg.WaterFPS),
			ChunkSize:   world.ChunkSize,
			ChunkHeight: world.ChunkHeight,
		}
		renderer.RenderOpaque(glctx, chunks, frameParams)
		renderer.RenderTransparent(glctx, chunks, frameParams)

		target := p.TargetBlock()
		crosshair.SetTargetHit(target.Hit)
		if target.Hit {
			renderer.DrawBlockHighlight(glctx, target.HitPos, cam, mgl32.Vec3{1.0, 1.0, 1.0})
		}

		uiRenderer.Render()

		window.SwapBuffers()
	}
}
