// Package profile derives an ambient vertical sounding from a handful of
// user-authored levels and lifts a warm parcel through it.
//
// Pressure at each level comes from the standard atmosphere. Between
// samples, temperature and specific humidity are interpolated linearly in
// altitude, while relative humidity and density are recomputed from them.
//
// An updraft is a parcel that starts DeltaT warmer than the surface air,
// keeps its specific humidity, cools dry-adiabatically until saturated and
// moist-adiabatically after. It rises until it would become denser than the
// surrounding air.
package profile
