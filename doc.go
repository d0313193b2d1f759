// Package keypath implements the geometry behind frame-anchored motion path
// authoring: freehand strokes are fitted to chains of cubic Béziers, points on
// those chains are tied to animation frames, and the result is sampled into
// per-frame point lists for an animation backend.
//
// # Paths
//
// A [Path] is an ordered chain of anchors. Each pair of consecutive anchors is
// joined by a straight line or a cubic Bézier, described by a [Segment]. The
// anchor view, with explicit incoming and outgoing tangent handles, is
// [Anchor]; [NewPath] converts from it and [Path.AnchorChain] back to it.
//
// # Curve fitting
//
// [FitStroke] turns the raw points of a stroke into anchors. The points are
// first optionally smoothed with a Catmull-Rom spline ([SmoothCatmullRom]),
// after which each point becomes an anchor whose handles lie 0.3 of the way
// towards its neighbours ([AnchorsFromPoints]).
//
// # Sampling
//
// [Sample] converts a path into a dense point list whose density depends on
// the estimated length of each segment. [SampleMultiple] and [AppendJoined]
// concatenate point lists without duplicating the points they share.
// [Path.HitTest] locates positions on a path for interactive editing.
//
// # Keyframes
//
// A [Document] holds one [Keyframe] per animation frame, each with the paths
// drawn while it was selected. A [KeyframePoint] ties an anchor of a path to a
// frame. [ResolveFrames] merges everything into one point list per frame,
// ready to be serialized by package [honnef.co/go/keypath/pathdata].
package keypath
