package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/ml-lab/generative-query-network/engine"
	"github.com/ml-lab/generative-query-network/scene"
)

const (
	width  = 640
	height = 480
)

func init() {
	// the gl context is bound to the thread that created it
	runtime.LockOSThread()
}

func main() {
	sc := scene.NewScene()

	floor := scene.NewObject(scene.NewPlaneGeometry(7, 7))
	sc.Add(floor)

	sphere := scene.NewObject(scene.NewSphereGeometry(0.75, 24, 16))
	sphere.SetPosition(mgl32.Vec3{-1.2, 0.75, 0})
	sphere.SetSmoothness(true)
	sc.Add(sphere)

	box := scene.NewObject(scene.NewBoxGeometry(1, 1, 1))
	box.SetPosition(mgl32.Vec3{0.4, 0.5, -1})
	box.SetRotation(mgl32.QuatRotate(0.5, mgl32.Vec3{0, 1, 0}))
	sc.Add(box)

	cone := scene.NewObject(scene.NewConeGeometry(0.6, 1.4, 32))
	cone.SetPosition(mgl32.Vec3{1.4, 0.7, 0.8})
	cone.SetSmoothness(true)
	sc.Add(cone)

	camera := scene.NewPerspectiveCamera(mgl32.DegToRad(45), float32(width)/float32(height), 0.1, 100)
	camera.LookAt(mgl32.Vec3{4, 3, 5}, mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{0, 1, 0})

	renderer, err := engine.NewSceneRenderer(sc, width, height)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	defer renderer.Unload()

	rgb := make([]uint8, width*height*3)
	renderer.Render(camera, rgb)
	if err := writeRGB("render.png", rgb); err != nil {
		log.Fatalf("render.png: %v", err)
	}

	depth := make([]float32, width*height)
	renderer.RenderDepthMap(camera, depth)
	if err := writeDepth("depth.png", depth); err != nil {
		log.Fatalf("depth.png: %v", err)
	}

	log.Println("wrote render.png and depth.png")
}

func writeRGB(name string, rgb []uint8) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for h := 0; h < height; h++ {
		for w := 0; w < width; w++ {
			i := (h*width + w) * 3
			img.SetRGBA(w, h, color.RGBA{rgb[i], rgb[i+1], rgb[i+2], 255})
		}
	}
	return writePNG(name, img)
}

// depth values are normalized over their range so near geometry reads
// dark and the far plane white
func writeDepth(name string, depth []float32) error {
	min, max := depth[0], depth[0]
	for _, d := range depth {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	span := max - min
	if span == 0 {
		span = 1
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for h := 0; h < height; h++ {
		for w := 0; w < width; w++ {
			d := depth[h*width+w]
			img.SetGray(w, h, color.Gray{uint8(255 * (d - min) / span)})
		}
	}
	return writePNG(name, img)
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
