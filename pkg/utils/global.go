package utils

import "image/color"

//ModelWidth is the default frame width the heatmap model takes as input
const ModelWidth = 640

//ModelHeight is the default frame height the heatmap model takes as input
const ModelHeight = 360

//HeatmapThreshold is the default 8-bit level above which a heatmap pixel counts as ball
const HeatmapThreshold = 127

//TraceLength is the default number of frames drawn behind the ball
const TraceLength = 7

//TraceMaxThickness is the thickness of the newest trace dot, each older dot is one pixel thinner
const TraceMaxThickness = 10

//TraceColor is the color of the ball trace
var TraceColor = color.RGBA{165, 225, 0, 0}

//TrackFileExt is the extension of exported tracks
const TrackFileExt = ".json"
