package highlight

import "html/template"

// All interpolated values go through html/template, so schema identifiers are
// always escaped.
const fragmentMarkup = `{{define "attribute" -}}
<span class="attributes">{{.Name}}
{{- if .Arguments}}<span class="open-argument">(</span>
{{- range $i, $arg := .Arguments}}{{if $i}}<span class="separator">,</span>{{end}}
{{- if $arg.IsList}}<span class="argument {{$arg.Class}}">{{if $arg.Label}}{{$arg.Label}}: {{end}}<span class="argument-list-container"><span class="open square-bracket">[</span>
{{- range $j, $item := $arg.Items}}{{if $j}}<span class="separator">,</span>{{end}}<span class="{{$arg.ItemClass}}">{{$item}}</span>{{end -}}
<span class="close square-bracket">]</span></span></span>
{{- else}}<span class="argument">{{if $arg.Label}}{{$arg.Label}}: {{end}}<span class="arguments">{{$arg.Value}}</span></span>{{end}}
{{- end}}<span class="close-argument">)</span>{{end -}}
</span>
{{- end}}
{{- define "model" -}}
<div class="models-wrapper">
<div class="model-name-open"><span class="keyword model-keyword">model</span> <span class="model-name">{{.Name}}</span> <span class="open-curly">{</span></div>
<div class="fields-container">
{{- range .Fields}}
<div class="field-wrapper">
<div class="field-name-container"><span class="field-name">{{.Name}}</span></div>
<div class="field-attributes-container">
{{- if .Relational}}<span class="relational-field-type">{{.Type}}<span class="field-modifier">{{.Modifier}}</span></span>
{{- else}}<span class="field-type">{{.Type}}<span class="field-modifier">{{.Modifier}}</span></span>{{end}}
{{- range .Attributes}}{{template "attribute" .}}{{end -}}
</div>
</div>
{{- end}}
</div>
<div class="model-attributes">
{{- range .BlockAttributes}}{{template "attribute" .}}{{end -}}
</div>
<div><span class="close-curly">}</span></div>
</div>
{{- end}}`

var fragmentTemplate = template.Must(template.New("fragment").Parse(fragmentMarkup))

type modelView struct {
	Name            string
	Fields          []fieldView
	BlockAttributes []attributeView
}

type fieldView struct {
	Name       string
	Type       string
	Modifier   string
	Relational bool
	Attributes []attributeView
}

type attributeView struct {
	Name      string
	Arguments []argumentView
}

// argumentView is either a scalar Value or, when IsList is set, a bracketed
// list of Items each wrapped in its own span.
type argumentView struct {
	Label     string
	Class     string
	ItemClass string
	IsList    bool
	Items     []string
	Value     string
}
