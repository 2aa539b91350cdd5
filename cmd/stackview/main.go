// Command stackview replays a compiled program's two-region runtime stack
// (named-variable slots growing alongside a temporary expression stack) as
// an animated grid, one recorded StackEvent at a time. It is a debugging
// aid only: it never affects what Compile produces.
package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"hydroc/pkg/compiler"
	"hydroc/pkg/grid"
	"hydroc/pkg/utils"
)

const (
	cellSize     = 32
	cols         = 16
	framesPerHop = 20 // slow the replay down to a human-watchable pace
)

var (
	varColor  = color.RGBA{70, 130, 180, 255}
	exprColor = color.RGBA{200, 120, 40, 255}
	bgColor   = color.RGBA{24, 24, 24, 255}
)

// Game steps one StackEvent every framesPerHop ticks and redraws the
// current shape of the variable and expression regions.
type Game struct {
	events    []compiler.StackEvent
	frame     int
	varCount  int
	exprDepth int
	cell      *ebiten.Image
}

func (g *Game) Update() error {
	g.frame++
	if g.frame%framesPerHop != 0 || len(g.events) == 0 {
		return nil
	}
	ev := g.events[0]
	g.events = g.events[1:]
	switch ev.Kind {
	case "let":
		g.varCount++
	case "push":
		g.exprDepth++
	case "pop":
		g.exprDepth--
	case "scope_end":
		g.varCount -= ev.Index
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	if g.cell == nil {
		g.cell = ebiten.NewImage(cellSize-4, cellSize-4)
	}

	drawSlot := func(index int, c color.RGBA) {
		x, y := grid.GetGridCoords(index, cols)
		g.cell.Fill(c)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x*cellSize+2), float64(y*cellSize+2))
		screen.DrawImage(g.cell, op)
	}

	for i := 0; i < g.varCount; i++ {
		drawSlot(i, varColor)
	}
	for i := 0; i < g.exprDepth; i++ {
		drawSlot(g.varCount+i, exprColor)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("vars=%d  expr=%d  events remaining=%d", g.varCount, g.exprDepth, len(g.events)),
		4, 4)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cols * cellSize, 16 * cellSize
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: stackview <path-to-source>")
	}

	fullPath, _, err := utils.GetPathInfo(os.Args[1])
	if err != nil {
		log.Fatalf("path error: %v", err)
	}
	sourceBytes, err := os.ReadFile(fullPath)
	if err != nil {
		log.Fatalf("read error: %v", err)
	}
	src := string(sourceBytes)

	tokens, err := compiler.Lex(src)
	if err != nil {
		log.Fatalf("lex error: %v", err)
	}
	prog, err := compiler.Parse(tokens, src)
	if err != nil {
		log.Fatalf("parse error: %v", err)
	}
	backend, err := compiler.AMD64.Backend()
	if err != nil {
		log.Fatalf("backend error: %v", err)
	}
	_, events, err := compiler.GenerateTraced(prog, backend)
	if err != nil {
		log.Fatalf("codegen error: %v", err)
	}

	ebiten.SetWindowSize(cols*cellSize, 16*cellSize)
	ebiten.SetWindowTitle("hydroc stackview")
	game := &Game{events: events}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
