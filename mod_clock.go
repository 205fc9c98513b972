package littleprince

// RotationClock drives all periodic motion in the scene: planet spin,
// star orbit, satellite orbit and sky rotation all derive from Rot via
// per-body multiplicative factors. Rot is incremented once per frame
// and never reset.
type RotationClock struct {
	Rot   float32
	Delta float32
}

type ClockModule struct{}

func (mod ClockModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&RotationClock{
		Rot:   0,
		Delta: DeltaRot,
	})
	app.UseSystem(
		System(clockSystem).
			InStage(PostUpdate),
	)
}

func clockSystem(clock *RotationClock) {
	clock.Rot += clock.Delta
}
