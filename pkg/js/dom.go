package js

import (
	"strings"

	"webling/pkg/html"

	"github.com/dop251/goja"
)

// domContext holds shared state for the document binding of one runtime.
// It caches proxies so the same JS object is returned for the same node
// (needed for === identity checks).
type domContext struct {
	vm    *goja.Runtime
	cache map[*html.Node]goja.Value
}

// registerDocument sets up the global `document` object. The binding is
// read-only: scripts may inspect the tree but not change it.
func registerDocument(vm *goja.Runtime, doc *html.Node) {
	ctx := &domContext{vm: vm, cache: make(map[*html.Node]goja.Value)}

	docObj := vm.NewObject()
	docObj.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Null()
		}
		id := call.Arguments[0].String()
		var found *html.Node
		doc.Walk(func(n *html.Node) {
			if found == nil && n.HasAttribute("id", id) {
				found = n
			}
		})
		return ctx.proxyOrNull(found)
	})
	docObj.Set("getElementsByTagName", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return ctx.elementArray(nil)
		}
		kind, err := html.KindForTag(strings.ToLower(call.Arguments[0].String()))
		if err != nil {
			return ctx.elementArray(nil)
		}
		return ctx.elementArray(doc.FindAll(kind))
	})
	// A class name matches the whole class attribute, as it does for
	// stylesheet class selectors.
	docObj.Set("getElementsByClassName", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return ctx.elementArray(nil)
		}
		cls := call.Arguments[0].String()
		var nodes []*html.Node
		doc.Walk(func(n *html.Node) {
			if n.HasAttribute("class", cls) {
				nodes = append(nodes, n)
			}
		})
		return ctx.elementArray(nodes)
	})
	docObj.Set("documentElement", ctx.proxyOrNull(doc.Find(html.Html)))
	docObj.Set("head", ctx.proxyOrNull(doc.Find(html.Head)))
	docObj.Set("body", ctx.proxyOrNull(doc.Find(html.Body)))
	vm.Set("document", docObj)
}

// elementArray creates a JS array of node proxies.
func (ctx *domContext) elementArray(nodes []*html.Node) goja.Value {
	values := make([]interface{}, len(nodes))
	for i, n := range nodes {
		values[i] = ctx.proxy(n)
	}
	return ctx.vm.NewArray(values...)
}

func (ctx *domContext) proxyOrNull(node *html.Node) goja.Value {
	if node == nil || node.Type == html.DocumentNode {
		return goja.Null()
	}
	return ctx.proxy(node)
}

// proxy creates (or retrieves from cache) a DynamicObject wrapping node.
func (ctx *domContext) proxy(node *html.Node) goja.Value {
	if v, ok := ctx.cache[node]; ok {
		return v
	}
	v := ctx.vm.NewDynamicObject(&nodeAccessor{ctx: ctx, node: node})
	ctx.cache[node] = v
	return v
}

// nodeAccessor implements goja.DynamicObject for element and text nodes.
type nodeAccessor struct {
	ctx  *domContext
	node *html.Node
}

var nodeKeys = []string{
	"nodeType", "nodeName", "nodeValue", "tagName", "id", "className", "textContent",
	"parentNode", "firstChild", "lastChild", "nextSibling", "previousSibling",
	"childNodes", "children", "getAttribute", "hasAttribute",
}

func (a *nodeAccessor) Get(key string) goja.Value {
	vm := a.ctx.vm
	n := a.node
	isText := n.Type == html.TextNode
	switch key {
	case "nodeType":
		if isText {
			return vm.ToValue(3)
		}
		return vm.ToValue(1)
	case "nodeName", "tagName":
		if isText {
			if key == "tagName" {
				return goja.Undefined()
			}
			return vm.ToValue("#text")
		}
		return vm.ToValue(strings.ToUpper(n.Kind.String()))
	case "nodeValue":
		if isText {
			return vm.ToValue(n.Text())
		}
		return goja.Null()
	case "id":
		id, _ := n.GetAttribute("id")
		return vm.ToValue(id)
	case "className":
		cls, _ := n.GetAttribute("class")
		return vm.ToValue(cls)
	case "textContent":
		return vm.ToValue(textContent(n))
	case "parentNode":
		return a.ctx.proxyOrNull(n.Parent)
	case "firstChild":
		return a.ctx.proxyOrNull(n.FirstChild)
	case "lastChild":
		return a.ctx.proxyOrNull(n.LastChild)
	case "nextSibling":
		return a.ctx.proxyOrNull(n.NextSibling)
	case "previousSibling":
		return a.ctx.proxyOrNull(n.PrevSibling)
	case "childNodes":
		return a.ctx.elementArray(n.Children())
	case "children":
		var elems []*html.Node
		for _, c := range n.Children() {
			if c.Type == html.ElementNode {
				elems = append(elems, c)
			}
		}
		return a.ctx.elementArray(elems)
	case "getAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				return goja.Null()
			}
			val, ok := n.GetAttribute(call.Arguments[0].String())
			if !ok {
				return goja.Null()
			}
			return vm.ToValue(val)
		})
	case "hasAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				return vm.ToValue(false)
			}
			_, ok := n.GetAttribute(call.Arguments[0].String())
			return vm.ToValue(ok)
		})
	}
	return goja.Undefined()
}

func (a *nodeAccessor) Set(key string, val goja.Value) bool {
	tracer().Debugf("goja: ignoring write to read-only node property %q", key)
	return false
}

func (a *nodeAccessor) Has(key string) bool {
	for _, k := range nodeKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (a *nodeAccessor) Delete(key string) bool {
	return false
}

func (a *nodeAccessor) Keys() []string {
	return nodeKeys
}

// textContent concatenates the text of all descendant text nodes.
func textContent(n *html.Node) string {
	var sb strings.Builder
	n.Walk(func(d *html.Node) {
		if d.Type == html.TextNode {
			sb.WriteString(d.Text())
		}
	})
	return sb.String()
}
