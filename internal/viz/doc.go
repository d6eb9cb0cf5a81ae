// Package viz renders the calculator's panels for the terminal.
//
//   - [Canvas]: Braille pixel canvas used for the tank sketches
//   - [TankWireframe]: 3D wireframe of the optimal tank, projected by a [Camera]
//   - [CostChart], [DensityChart], [ThermalChart]: asciigraph line charts
//   - [OptimizationPanel], [MassPanel], [ThermalPanel]: metric blocks
//
// Styles are derived from the active [Theme]; three are built in.
package viz
