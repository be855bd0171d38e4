package pipeline

import (
	"sync"

	"github.com/google/uuid"
	"github.com/npillmayer/canopy/dom"
	"github.com/npillmayer/canopy/fontsvc"
	"github.com/npillmayer/canopy/layout"
	"github.com/npillmayer/canopy/markup"
	"github.com/npillmayer/canopy/raster"
	"github.com/npillmayer/canopy/styledtree"
)

type markupJob struct {
	id     uuid.UUID
	source string
}

type docJob struct {
	id  uuid.UUID
	doc *dom.Document
}

type styledJob struct {
	id   uuid.UUID
	root *styledtree.StyNode
}

type layoutJob struct {
	id  uuid.UUID
	box *layout.Box
}

// Pipeline runs the four-stage Markup → Style → Layout → Raster harness
// described in package doc.go.
type Pipeline struct {
	cfg   Config
	fonts fontsvc.Service

	markupCh chan markupJob
	docCh    chan docJob
	styledCh chan styledJob
	layoutCh chan layoutJob

	mu          sync.Mutex
	displayList raster.DisplayList
	lastFrame   uuid.UUID

	closeOnce sync.Once
	closed    bool
}

// New constructs a Pipeline with cfg's tunables (zero-valued fields fall
// back to Config's defaults) but does not yet start its workers; call
// Run for that.
func New(cfg Config) *Pipeline {
	cfg = cfg.withDefaults()
	if cfg.DefaultStylesheetPath != "" {
		markup.DefaultStylesheetPath = cfg.DefaultStylesheetPath
	}
	return &Pipeline{
		cfg:      cfg,
		fonts:    fontsvc.New(),
		markupCh: make(chan markupJob, cfg.ChannelBuffer),
		docCh:    make(chan docJob, cfg.ChannelBuffer),
		styledCh: make(chan styledJob, cfg.ChannelBuffer),
		layoutCh: make(chan layoutJob, cfg.ChannelBuffer),
	}
}

// Run starts the four worker goroutines. Run returns immediately; the
// workers keep running until Shutdown closes the ingress channel and
// every stage has drained.
func (p *Pipeline) Run() {
	go p.parseWorker()
	go p.styleWorker()
	go p.layoutWorker()
	go p.rasterWorker()
}

// Submit enqueues markup source for a full re-render through all four
// stages, returning the uuid tagging this frame for log correlation.
// Submit never blocks: if the ingress channel is full, the oldest queued
// frame is dropped to make room, matching spec.md's backpressure
// contract. Submit returns ErrChannelClosed after Shutdown.
func (p *Pipeline) Submit(source string) (uuid.UUID, error) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return uuid.UUID{}, ErrChannelClosed
	}

	id := uuid.New()
	job := markupJob{id: id, source: source}
	select {
	case p.markupCh <- job:
		tracer().Debugf("frame %s submitted", id)
		return id, nil
	default:
	}
	select {
	case dropped := <-p.markupCh:
		tracer().Infof("frame %s dropped to make room for frame %s", dropped.id, id)
	default:
	}
	select {
	case p.markupCh <- job:
	default:
		tracer().Infof("frame %s dropped: ingress still full after eviction", id)
	}
	return id, nil
}

// Shutdown closes the ingress channel; every stage exits cleanly once it
// has drained its input, matching spec.md's channel-closure shutdown
// contract. Shutdown is idempotent.
func (p *Pipeline) Shutdown() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		close(p.markupCh)
	})
}

// DisplayList returns the most recently rasterized display list and the
// uuid of the frame it was produced from, under the same lock the
// raster worker writes through.
func (p *Pipeline) DisplayList() (raster.DisplayList, uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.displayList, p.lastFrame
}

func (p *Pipeline) parseWorker() {
	for job := range p.markupCh {
		doc, err := markup.Parse(job.source)
		if err != nil {
			tracer().Errorf("frame %s: markup parse failed: %v", job.id, err)
			continue
		}
		p.docCh <- docJob{id: job.id, doc: doc}
	}
	close(p.docCh)
}

func (p *Pipeline) styleWorker() {
	for job := range p.docCh {
		root, err := styledtree.Resolve(job.doc)
		if err != nil {
			tracer().Errorf("frame %s: style resolve failed: %v", job.id, err)
			continue
		}
		p.styledCh <- styledJob{id: job.id, root: root}
	}
	close(p.styledCh)
}

func (p *Pipeline) layoutWorker() {
	for job := range p.styledCh {
		box, err := layout.Layout(job.root, p.cfg.ViewportWidth, p.fonts)
		if err != nil {
			tracer().Errorf("frame %s: layout failed: %v", job.id, err)
			continue
		}
		p.layoutCh <- layoutJob{id: job.id, box: box}
	}
	close(p.layoutCh)
}

func (p *Pipeline) rasterWorker() {
	for job := range p.layoutCh {
		list := raster.Generate(job.box)
		p.mu.Lock()
		p.displayList = list
		p.lastFrame = job.id
		p.mu.Unlock()
		tracer().Debugf("frame %s: rasterized %d commands", job.id, len(list))
	}
}
