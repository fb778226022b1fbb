package site

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/elements/internal/errors"
	"github.com/vango-dev/elements/internal/stories"
	"github.com/vango-dev/elements/pkg/components"
	"github.com/vango-dev/elements/pkg/element"
	"github.com/vango-dev/elements/pkg/render"
	"github.com/vango-dev/elements/pkg/vdom"
)

const pageCSS = `body{margin:0;font-family:var(--font-sans);color:hsl(var(--foreground));background:hsl(var(--background))}` +
	`main{max-width:56rem;margin:0 auto;padding:2rem}` +
	`.story{border:1px solid hsl(var(--border));border-radius:var(--radius);padding:1.5rem;margin:1rem 0}` +
	`.meta{color:hsl(var(--muted-foreground));font-size:.875rem}`

// playScript forwards clicks, key presses and text input on elements with
// an id to the playground socket and replaces the stage with each state
// frame.
const playScript = `(function(){
var stage=document.getElementById("stage"),log=document.getElementById("events");
var ws=new WebSocket((location.protocol==="https:"?"wss://":"ws://")+location.host+"/play/ws?story="+encodeURIComponent(stage.dataset.story));
function target(e){var n=e.composedPath()[0];while(n&&!n.id&&n!==stage){n=n.parentNode||n.host}return n&&n.id?n.id:""}
function send(a){if(a.target)ws.send(JSON.stringify(a))}
stage.addEventListener("click",function(e){e.preventDefault();send({type:"click",target:target(e)})});
stage.addEventListener("keydown",function(e){e.preventDefault();send({type:"press",target:target(e),key:e.key})});
stage.addEventListener("input",function(e){send({type:"input",target:target(e),value:e.composedPath()[0].value})});
ws.onmessage=function(m){var f=JSON.parse(m.data);
if(f.type==="state"){stage.setHTMLUnsafe(f.html);(f.events||[]).forEach(function(ev){var li=document.createElement("li");li.textContent=ev.type+" "+ev.target+" "+JSON.stringify(ev.detail);log.prepend(li)});
if(f.focused){var el=document.getElementById(f.focused);if(el)el.focus()}}
else if(f.error){var li=document.createElement("li");li.textContent=f.error.code+": "+f.error.message;log.prepend(li)}};
})();`

func (s *Server) page(w http.ResponseWriter, title, description string, body *vdom.VNode, scripts ...string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	r := render.NewRenderer(render.RendererConfig{})
	err := r.RenderPage(w, render.PageData{
		Title:       title + " · " + s.config.Name,
		Description: description,
		Styles:      []string{":root{" + s.theme.CustomProperties() + "}", pageCSS},
		Body:        body,
		Scripts:     scripts,
	})
	if err != nil {
		s.logger.Error("render page", "title", title, "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	ee := errors.FromError(err, "E161")
	if status >= 500 {
		s.logger.Error("request failed", "error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"error": ee})
}

func (s *Server) layout(children ...any) *vdom.VNode {
	nav := vdom.Nav(vdom.AriaLabel("Site"),
		vdom.A(vdom.Href("/"), "Components"), " · ",
		vdom.A(vdom.Href("/registry.json"), "registry.json"))
	footer := vdom.Footer(vdom.Class("meta"), vdom.Textf("%s %s", s.config.Name, s.config.Version))
	body := append([]any{vdom.Header(nav)}, children...)
	return vdom.Main(append(body, footer)...)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	items := vdom.Range(components.Catalog(), func(info element.Info, _ int) *vdom.VNode {
		return vdom.Li(
			vdom.A(vdom.Href("/components/"+info.Name), vdom.Strong(info.Name)),
			" ",
			vdom.Span(vdom.Class("meta"), info.Description),
		)
	})
	s.page(w, "Components", "Accessible UI elements", s.layout(
		vdom.H1(s.config.Name),
		vdom.P(vdom.Class("meta"), "Version "+s.config.Version),
		vdom.Ul(items),
	))
}

func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	info, ok := components.Lookup(name)
	if !ok {
		s.fail(w, http.StatusNotFound, errors.New("E141").WithDetail("No component named "+name))
		return
	}

	list := s.stories.ForComponent(name)
	children := []any{
		vdom.H1(info.Name),
		vdom.P(info.Description),
		vdom.Section(vdom.H2("Reference"), reference(info)),
		vdom.If(len(list) == 0, vdom.P(vdom.Class("meta"), "No stories yet.")),
	}
	for _, st := range list {
		el, err := s.renderStory(st)
		if err != nil {
			s.fail(w, http.StatusInternalServerError, err)
			return
		}
		source, err := render.NewRenderer(render.RendererConfig{Pretty: true}).RenderToString(el)
		if err != nil {
			s.fail(w, http.StatusInternalServerError, err)
			return
		}
		children = append(children, vdom.Article(vdom.Class("story"), vdom.ID("story-"+st.Name),
			vdom.H2(st.Title),
			vdom.P(vdom.Class("meta"), st.Description),
			el,
			vdom.H3("Markup"),
			vdom.Pre(vdom.Code(source)),
			vdom.P(vdom.A(vdom.Href("/play/"+st.Name), "Open in playground")),
		))
	}
	s.page(w, info.Name, info.Description, s.layout(children...))
}

func reference(info element.Info) *vdom.VNode {
	rows := []any{vdom.Tr(vdom.Th("Kind"), vdom.Th("Names"))}
	add := func(kind string, names []string) {
		if len(names) == 0 {
			return
		}
		cells := make([]any, 0, len(names))
		for i, n := range names {
			if i > 0 {
				cells = append(cells, " ")
			}
			cells = append(cells, vdom.Code(n))
		}
		rows = append(rows, vdom.Tr(vdom.Td(kind), vdom.Td(cells...)))
	}
	add("Tags", info.Tags)
	add("Attributes", info.Attributes)
	add("Events", info.Events)
	add("Depends on", info.DependsOn)
	return vdom.Table(append([]any{vdom.Class("meta")}, rows...)...)
}

// renderStory mounts a story and returns its tree, declarative shadow roots
// included.
func (s *Server) renderStory(st stories.Story) (*vdom.VNode, error) {
	doc, err := stories.NewDocument(s.logger)
	if err != nil {
		return nil, err
	}
	el, err := st.Mount(doc)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordRender(st.Name)
	return el.VNode(), nil
}

func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	st, err := s.stories.Get(chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, http.StatusNotFound, err)
		return
	}
	node, err := s.renderStory(st)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.NewRenderer(render.RendererConfig{}).RenderToWriter(w, node); err != nil {
		s.logger.Error("render story", "story", st.Name, "error", err)
	}
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	st, err := s.stories.Get(chi.URLParam(r, "story"))
	if err != nil {
		s.fail(w, http.StatusNotFound, err)
		return
	}
	node, err := s.renderStory(st)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	s.page(w, "Playground: "+st.Title, st.Description, s.layout(
		vdom.H1(st.Title),
		vdom.P(vdom.Class("meta"), st.Component+" · "+st.Name),
		vdom.Div(vdom.ID("stage"), vdom.Class("story"), vdom.Role("region"), vdom.AriaLabel("Playground"),
			vdom.Data("story", st.Name), node),
		vdom.H2("Events"),
		vdom.Ul(vdom.ID("events"), vdom.Class("meta")),
	), playScript)
}

func (s *Server) handleRegistry(w http.ResponseWriter, r *http.Request) {
	etag := `"` + s.checksum + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=300")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(s.body)
}
