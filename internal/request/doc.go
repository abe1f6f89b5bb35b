// Package request loads and watches YAML request files for the recommend and
// watch commands.
//
// A request file mirrors seal.Request:
//
//	bore_mm: 95.2
//	groove_cs_mm: 4.0
//	temp_c: 120
//	medium: Mineral Oil
//	system_pressure_bar: 150
//	motion: both
//	speed_m_per_s: 0
//	preferred_materials: [FKM]
//
// Watch(ctx, path, onChange) uses fsnotify on the file's directory so that
// editors which save by rename (vim, VS Code) keep triggering reloads. A save
// that fails to parse or validate is logged and skipped.
package request
