package cli

const usageTemplate = `
ParcelSync Field Client

Usage:
  parcelsync [OPTIONS] COMMAND

Options:
  --version          Show version information
  --server URL       Sync server URL (default: http://localhost:8080)
  --db PATH          Path to local database (default: parcelsync-client.db)
  --token TOKEN      Bearer token for the sync server
  --collection NAME  Document collection (default: parcels)

Commands:
  status                        Show sync status and pending queue depth
  sync                          Synchronize all local parcels with the server
  watch                         Stay running and replay queued operations when
                                the server becomes reachable
  list                          List parcels stored on this device
  show <parcel-key>             Show a parcel's notes, metadata and photos
  notes <parcel-key> [text]     Replace the notes of a parcel (prompts if omitted)
  meta <parcel-key> <k> <v>     Set one metadata field
  photo <parcel-key> <file> [caption]
                                Attach a photo to a parcel

Examples:
  parcelsync notes king/2026/lot-42 'Roof needs repair before winter'
  parcelsync meta king/2026/lot-42 inspector pat
  parcelsync photo king/2026/lot-42 north-wall.jpg 'north wall crack'
  parcelsync show king/2026/lot-42
  parcelsync sync
  parcelsync --server https://sync.example.com status
`

const parcelTemplate = `
=== Parcel {{.Key}} ===

Notes:
---
{{.View.Notes}}
---

Metadata:
{{- range $k, $v := .View.Metadata }}
  {{ $k }}: {{ $v }}
{{- end }}

Photos: {{len .View.Photos}}
{{- range .View.Photos }}
  - {{ .ID }}
    {{- if .Caption }}
    Caption: {{ .Caption }}
    {{- end }}
    URI:     {{ .URI }}
    Taken:   {{ .Timestamp.Format "2006-01-02 15:04:05" }}
{{- end }}
`

const parcelListTemplate = `
=== Local Parcels ===

{{- if eq (len .) 0 }}
No parcels on this device.

Use 'parcelsync notes <parcel-key> <text>' to start one.
{{ else }}
Found {{len .}} parcel(s):

{{- range . }}
  - {{ . }}
{{- end }}

Use 'parcelsync show <parcel-key>' to view details.
{{- end }}
`
