// Package schema provides the object model of accessor schemas, its YAML
// codec, validation and include loading.
//
// # Schema Overview
//
// One file describes one object:
//
//	name: Player
//	rename: PlayerData        # optional, the accessor becomes PlayerDataAccessor
//	package: com.example.game
//	includes:                 # other schema files, relative to this one
//	  - ../items/Item.yaml
//	fields:
//	  - name: health
//	    type: i32
//	  - name: items
//	    type: Array(Object(Item))
//	    hierarchy: true       # field declared on a superclass
//
// An enum object lists variants instead of fields:
//
//	name: GameMode
//	package: com.example.game
//	variants:
//	  - name: SURVIVAL
//	  - name: CREATIVE
//	    rename: Creative
//
// # Types
//
// Field types are written as strings:
//   - Primitives: bool, i32, i64, u8, i16, f32, f64
//   - Text: string
//   - The enclosing object: self
//   - Another schema: Object(Name)
//   - Arrays of any depth: Array(i32), Array(Array(Object(Name)))
//
// # Errors
//
// Every error returned while loading wraps ErrIO or ErrDecode. Objects that
// declare both fields and variants decode fine but fail CheckAmbiguous.
package schema
