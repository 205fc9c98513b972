package main

import (
	"fmt"

	littleprince "github.com/frashpikass/Little-Prince-s-Planet"
)

func main() {
	fmt.Println("WASD move the observer in space.")
	fmt.Println("Arrow keys change the camera direction.")
	fmt.Println("Hit ESC key to quit.")

	app := littleprince.NewAppBuilder().
		UseModule(littleprince.LoggingModule{Prefix: "littleprince"}).
		UseModule(littleprince.NewPlatformWindow(
			littleprince.WindowWidth,
			littleprince.WindowHeight,
			"Little Prince's Lair",
		)).
		UseModule(littleprince.AssetServerModule{}).
		UseModule(littleprince.InputModule{}).
		UseModule(littleprince.ClockModule{}).
		UseModule(littleprince.CameraModule{}).
		UseModule(littleprince.SceneModule{}).
		UseModule(littleprince.RendererModule{}).
		Build()

	app.Run()
}
