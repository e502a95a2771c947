package main

import (
	"errors"

	"solids-viewer/internal/catalog"
	"solids-viewer/internal/config"
	"solids-viewer/internal/debug"
	"solids-viewer/internal/graphics"
	"solids-viewer/internal/ident"
	"solids-viewer/internal/logger"
	"solids-viewer/internal/render"
	"solids-viewer/internal/scene"
	"solids-viewer/internal/session"
	"solids-viewer/internal/ui"
)

const logPath = "logs/viewer.txt"

func main() {
	cfg := config.Load(config.SettingsPath)
	prefs := config.LoadPrefs()
	log := logger.New(logPath)

	cat := catalog.Default()
	if cfg.ScenePath != "" {
		// A rejected overlay leaves the built-in tables in place.
		if err := cat.LoadOverlay(cfg.ScenePath); err != nil {
			log.Log("warning: scene overlay: " + err.Error())
		}
	}

	notices := render.NewNoticeBox()
	ses := session.New(cat, &cfg, log, notices.Push)

	panel, err := ui.BuildList("div", map[string]string{"class": "sidebar", "id": "controls"},
		[]any{"h1", map[string]string{"class": "heading"}, "Solids"},
	)
	if err != nil {
		panic(err)
	}

	screenW := cfg.SidebarWidth + cfg.CanvasWidth
	screenH := cfg.CanvasHeight
	graphics.Open(screenW, screenH, "Solids viewer")
	defer graphics.Close()

	// Initialization failure is terminal for the 3D view but not for the
	// process: the partially built panel is cleared, a static message takes
	// its place, and the fade-in still runs.
	r := render.NewRenderer()
	var vp *render.Viewport
	if err := assembleScene(r, panel, ses, &cfg, log); err != nil {
		log.Log("init failed: " + err.Error())
		panel.RemoveAll()
		if msg, buildErr := ui.BuildList("p", map[string]string{"id": "error"}, "Could not initialize the 3D view."); buildErr == nil {
			panel.Append(msg)
		}
	} else {
		vp = render.NewViewport(&cfg, &prefs, r)
	}

	sidebar := render.NewSidebar(&cfg, panel)
	fade := render.NewFade(&cfg)
	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowMemAlloc = prefs.ShowMemAlloc

	update := func() {
		fade.Update()
		if notices.Active() {
			// A visible notice blocks every other interaction, including the
			// frame in which the dismissing click lands: returning here keeps
			// that click from also hitting whatever sits under the cursor.
			notices.Update()
			return
		}
		sidebar.Update()
		render.PollCommands(ses)
		ses.Step()
		if vp != nil {
			vp.Repaint(ses)
		}
	}
	draw := func() {
		if vp != nil {
			vp.Blit()
		}
		sidebar.Draw()
		notices.Draw(screenW, screenH)
		dbg.Draw(screenW)
		fade.Draw(screenW, screenH)
	}
	graphics.Loop(update, draw)
}

// assembleScene builds every renderer object and sidebar control. It requires
// a live GL context; without one the whole scene init counts as failed.
func assembleScene(r *render.Renderer, panel *ui.Node, ses *session.Session, cfg *config.Settings, log *logger.Logger) error {
	if !graphics.Ready() {
		return errors.New("window or GL context unavailable")
	}
	pool := ident.NewPool()
	asm := scene.New(r, pool, panel, ses, cfg, log)
	return asm.AssembleAll()
}
