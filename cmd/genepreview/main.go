// Gene vector preview tool - interactive sliders over the four categories
// showing the derived color, code, and a field of mutated offspring.
//
// Usage: go run ./cmd/genepreview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/genes"
)

const (
	windowWidth  = 900
	windowHeight = 560
	swatchSize   = 220
	panelWidth   = windowWidth - swatchSize - 40

	offspringCount = 64
	offspringCell  = 24
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Gene Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	rng := rand.New(rand.NewSource(42))
	g := genes.Genes{2, 2, 2, 2}
	chance := 0.25
	offspring := make([]genes.Genes, offspringCount)
	resample(g, rng, chance, offspring)

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 20, G: 25, B: 30, A: 255})

		// Parent swatch and code
		c := g.Color()
		rl.DrawRectangle(20, 20, swatchSize, swatchSize, rl.Color{R: c.R, G: c.G, B: c.B, A: 255})
		rl.DrawRectangleLines(20, 20, swatchSize, swatchSize, rl.Gray)
		rl.DrawText(g.Code(), 20, swatchSize+30, 20, rl.White)
		rl.DrawText(fmt.Sprintf("sum %d", g.Sum()), 20, swatchSize+56, 14, rl.LightGray)

		// Sliders
		panelX := float32(swatchSize + 40)
		y := float32(20)
		changed := false

		rl.DrawText("Gene counts", int32(panelX), int32(y), 18, rl.White)
		y += 30

		for cat := genes.Category(0); cat < genes.NumCategories; cat++ {
			rl.DrawText(cat.String(), int32(panelX), int32(y), 14, rl.Gray)
			y += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: y, Width: panelWidth - 80, Height: 20},
				"0", "16",
				float32(g[cat]), 0, 16,
			)
			rl.DrawText(fmt.Sprintf("%d", g[cat]), int32(panelX+panelWidth-60), int32(y+2), 16, rl.White)
			if int(v+0.5) != g[cat] {
				g[cat] = int(v + 0.5)
				changed = true
			}
			y += 32
		}

		rl.DrawText("Mutation chance", int32(panelX), int32(y), 14, rl.Gray)
		y += 18
		newChance := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: y, Width: panelWidth - 80, Height: 20},
			"0", "1",
			float32(chance), 0, 1,
		)
		rl.DrawText(fmt.Sprintf("%.2f", chance), int32(panelX+panelWidth-70), int32(y+2), 16, rl.White)
		if float64(newChance) != chance {
			chance = float64(newChance)
			changed = true
		}
		y += 36

		if gui.Button(rl.Rectangle{X: panelX, Y: y, Width: 120, Height: 28}, "Resample") || changed {
			resample(g, rng, chance, offspring)
		}
		y += 44

		// Offspring field: one swatch per sampled mutation
		rl.DrawText("Mutated offspring", int32(panelX), int32(y), 14, rl.Gray)
		y += 20
		perRow := int((panelWidth - 20) / offspringCell)
		for i, child := range offspring {
			cc := child.Color()
			x := int32(panelX) + int32(i%perRow)*offspringCell
			cy := int32(y) + int32(i/perRow)*offspringCell
			rl.DrawRectangle(x, cy, offspringCell-2, offspringCell-2,
				rl.Color{R: cc.R, G: cc.G, B: cc.B, A: 255})
			if child != g {
				rl.DrawRectangleLines(x, cy, offspringCell-2, offspringCell-2, rl.Yellow)
			}
		}

		rl.EndDrawing()
	}
}

// resample redraws the offspring field from the current parent vector.
func resample(g genes.Genes, rng *rand.Rand, chance float64, offspring []genes.Genes) {
	for i := range offspring {
		offspring[i] = g.Mutate(rng, chance)
	}
}
